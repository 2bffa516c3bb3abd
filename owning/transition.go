package owning

// An Op names a lifecycle operation performed on a Value.
type Op string

// The full set of lifecycle operations.
const (
	OpConstruct     Op = "construct"
	OpCopyConstruct Op = "copy-construct"
	OpCopyAssign    Op = "copy-assign"
	OpMoveConstruct Op = "move-construct"
	OpMoveAssign    Op = "move-assign"
	OpDestroy       Op = "destroy"
)

// A list of hook poses for the hooks to apply to. Destruction triggers twice,
// once before the auxiliary slot is released and once after.
var (
	HookPosConstruct     = &HookPos{Name: "Construct"}
	HookPosCopyConstruct = &HookPos{Name: "CopyConstruct"}
	HookPosCopyAssign    = &HookPos{Name: "CopyAssign"}
	HookPosMoveConstruct = &HookPos{Name: "MoveConstruct"}
	HookPosMoveAssign    = &HookPos{Name: "MoveAssign"}
	HookPosBeforeDestroy = &HookPos{Name: "BeforeDestroy"}
	HookPosAfterDestroy  = &HookPos{Name: "AfterDestroy"}
)

// A Transition is a snapshot of a value taken right at a lifecycle operation.
// AuxPresent is false when the value has been moved from and no longer owns
// an auxiliary slot, in which case Auxiliary is meaningless.
type Transition struct {
	Object     string `json:"object"`
	Op         string `json:"op"`
	Value      int    `json:"value"`
	Auxiliary  int    `json:"auxiliary"`
	AuxPresent bool   `json:"aux_present"`
}

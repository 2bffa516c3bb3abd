package owning

// AuxOffset is the fixed distance between the primary state of a live value
// and its auxiliary state. Immediately after any construction or copy, the
// auxiliary of a value with primary state v reads v+AuxOffset.
const AuxOffset = 3

// DefaultState is the primary state of a default-constructed or moved-from
// value.
const DefaultState = 0

// A Value holds an integer and the exclusive ownership of one auxiliary
// integer slot. At any point in time at most one live value owns a given
// auxiliary slot. Copying a value allocates a fresh slot; moving a value
// transfers the slot and leaves the source in the moved-from state
// (primary state DefaultState, auxiliary absent).
//
// Every lifecycle operation invokes the hooks registered on the value after
// the transition completes. Values derived through CopyOf or MoveOf inherit
// the hooks of their source, so one family of values shares its observers.
type Value struct {
	HookableBase

	name      string
	value     int
	auxiliary *int
}

// NewValue creates a value with the given initial primary state and a freshly
// allocated auxiliary slot. The hooks are registered before the construction
// transition fires, so they observe the full lifecycle of the value.
func NewValue(initial int, hooks ...Hook) *Value {
	v := &Value{name: "value_" + GetIDGenerator().Generate()}
	for _, h := range hooks {
		v.AcceptHook(h)
	}

	v.value = initial
	v.auxiliary = newAux(initial)
	v.afterTransition(HookPosConstruct, OpConstruct)

	return v
}

// NewDefaultValue creates a value with the default primary state.
func NewDefaultValue(hooks ...Hook) *Value {
	return NewValue(DefaultState, hooks...)
}

// CopyOf creates a value by copying src. The new value gets its own auxiliary
// slot, recomputed from src's primary state rather than duplicated from src's
// stored auxiliary. The two coincide while the auxiliary invariant holds, but
// recompute-from-value is the copy rule. src is never mutated.
func CopyOf(src *Value) *Value {
	v := &Value{name: "value_" + GetIDGenerator().Generate()}
	v.hookList = append([]Hook(nil), src.Hooks()...)

	v.value = src.value
	v.auxiliary = newAux(src.value)
	v.afterTransition(HookPosCopyConstruct, OpCopyConstruct)

	return v
}

// MoveOf creates a value by moving src into it. The auxiliary slot transfers
// as-is, without reallocation. src is left in the moved-from state and must
// not be read from afterward, though destroying or reassigning it is safe.
func MoveOf(src *Value) *Value {
	v := &Value{name: "value_" + GetIDGenerator().Generate()}
	v.hookList = append([]Hook(nil), src.Hooks()...)

	v.value = src.value
	v.auxiliary = src.auxiliary
	src.value = DefaultState
	src.auxiliary = nil
	v.afterTransition(HookPosMoveConstruct, OpMoveConstruct)

	return v
}

// CopyFrom overwrites v with a copy of src. The current auxiliary slot is
// released and a new one is recomputed from src's primary state. Assigning a
// value to itself leaves it untouched; releasing the slot first would destroy
// the very state the assignment reads from. Returns v to support chaining.
func (v *Value) CopyFrom(src *Value) *Value {
	if v != src {
		v.value = src.value
		v.auxiliary = newAux(src.value)
	}
	v.afterTransition(HookPosCopyAssign, OpCopyAssign)

	return v
}

// MoveFrom overwrites v by moving src into it. v's current slot is released,
// src's slot transfers without reallocation, and src is reset to the
// moved-from state. The self-assignment check prevents v from releasing the
// slot it is about to receive. Returns v to support chaining.
func (v *Value) MoveFrom(src *Value) *Value {
	if v != src {
		v.value = src.value
		v.auxiliary = src.auxiliary
		src.value = DefaultState
		src.auxiliary = nil
	}
	v.afterTransition(HookPosMoveAssign, OpMoveAssign)

	return v
}

// Destroy releases the auxiliary slot if the value still owns one. Destroying
// a moved-from value is safe: the slot has already transferred and releasing
// an absent slot is a no-op. Hooks fire before and after the release.
func (v *Value) Destroy() {
	v.afterTransition(HookPosBeforeDestroy, OpDestroy)
	v.auxiliary = nil
	v.afterTransition(HookPosAfterDestroy, OpDestroy)
}

// Name returns the identity token of the value. It is stable for the lifetime
// of the value and never transfers on copy or move.
func (v *Value) Name() string {
	return v.name
}

// Value returns the primary state.
func (v *Value) Value() int {
	return v.value
}

// Auxiliary returns the auxiliary state and whether the value still owns its
// auxiliary slot. The second return is false for moved-from values.
func (v *Value) Auxiliary() (int, bool) {
	if v.auxiliary == nil {
		return 0, false
	}

	return *v.auxiliary, true
}

// MovedFrom returns true if the value no longer owns an auxiliary slot.
func (v *Value) MovedFrom() bool {
	return v.auxiliary == nil
}

func (v *Value) afterTransition(pos *HookPos, op Op) {
	if v.NumHooks() == 0 {
		return
	}

	v.InvokeHook(HookCtx{
		Domain: v,
		Pos:    pos,
		Item:   v.snapshot(op),
	})
}

func (v *Value) snapshot(op Op) Transition {
	t := Transition{
		Object: v.name,
		Op:     string(op),
		Value:  v.value,
	}

	if v.auxiliary != nil {
		t.Auxiliary = *v.auxiliary
		t.AuxPresent = true
	}

	return t
}

func newAux(value int) *int {
	aux := value + AuxOffset
	return &aux
}

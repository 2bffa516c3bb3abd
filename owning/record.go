package owning

import (
	"fmt"
	"reflect"
)

// A TransitionRecorder persists lifecycle transitions for post-run
// inspection.
type TransitionRecorder interface {
	RecordTransition(t Transition)
}

// Record lets the recorder collect every lifecycle transition of v from now
// on. Destruction is recorded once, with the post-release state.
func Record(v *Value, recorder TransitionRecorder) {
	for _, hook := range v.Hooks() {
		hook, ok := hook.(*recordHook)
		if ok && hook.r == recorder {
			panic(fmt.Sprintf(
				"value %s already has recorder %s",
				v.Name(), reflect.TypeOf(recorder)))
		}
	}

	v.AcceptHook(NewRecordHook(recorder))
}

// NewRecordHook creates a hook that forwards transitions to the recorder. Use
// it directly when the hook must be in place before construction fires.
func NewRecordHook(recorder TransitionRecorder) Hook {
	return &recordHook{r: recorder}
}

// A recordHook is a hook that forwards transitions to a recorder.
type recordHook struct {
	r TransitionRecorder
}

// Func forwards the transition when the hook is triggered.
func (h *recordHook) Func(ctx HookCtx) {
	if ctx.Pos == HookPosBeforeDestroy {
		return
	}

	t, ok := ctx.Item.(Transition)
	if !ok {
		return
	}

	h.r.RecordTransition(t)
}

package owning

import (
	"fmt"
	"log"
)

// A LogHook is a hook that is responsible for recording information from the
// lifecycle of values.
type LogHook interface {
	Hook
}

// LogHookBase provides the common logic for all LogHooks.
type LogHookBase struct {
	*log.Logger
}

// LifecycleLogger is a hook that prints every lifecycle transition of the
// values it observes.
type LifecycleLogger struct {
	LogHookBase
}

// NewLifecycleLogger returns a new LifecycleLogger which will write into the
// logger.
func NewLifecycleLogger(logger *log.Logger) *LifecycleLogger {
	h := new(LifecycleLogger)
	h.Logger = logger
	return h
}

// Func writes the transition information into the logger.
func (h *LifecycleLogger) Func(ctx HookCtx) {
	t, ok := ctx.Item.(Transition)
	if !ok {
		return
	}

	switch ctx.Pos {
	case HookPosBeforeDestroy:
		h.Logger.Printf("%s is being destroyed, %s", t.Object, stateString(t))
	case HookPosAfterDestroy:
		h.Logger.Printf("%s destruction complete", t.Object)
	default:
		h.Logger.Printf("%s %s, %s", t.Object, t.Op, stateString(t))
	}
}

func stateString(t Transition) string {
	if !t.AuxPresent {
		return fmt.Sprintf("value = %d, auxiliary = absent", t.Value)
	}

	return fmt.Sprintf("value = %d, auxiliary = %d", t.Value, t.Auxiliary)
}

// Package session wires the pieces of an observed run together: it creates
// values with the run's observers attached, keeps a registry of them, and
// owns the journal and the monitor.
package session

import (
	"log"

	"github.com/sarchlab/lifeline/journal"
	"github.com/sarchlab/lifeline/monitoring"
	"github.com/sarchlab/lifeline/owning"
)

// A Session provides the services required to run an observed set of value
// lifecycles.
type Session struct {
	id string

	logger          *log.Logger
	lifecycleLogger *owning.LifecycleLogger

	dataRecorder journal.DataRecorder
	recorder     *journal.Recorder
	monitor      *monitoring.Monitor

	hooks []owning.Hook

	values         []*owning.Value
	valueNameIndex map[string]int
}

// ID returns the ID of the session.
func (s *Session) ID() string {
	return s.id
}

// Monitor returns the monitor of the session, nil if monitoring is disabled.
func (s *Session) Monitor() *monitoring.Monitor {
	return s.monitor
}

// DataRecorder returns the journal backend of the session, nil if the journal
// is disabled.
func (s *Session) DataRecorder() journal.DataRecorder {
	return s.dataRecorder
}

// NewValue creates a value with the session's observers attached and
// registers it.
func (s *Session) NewValue(initial int) *owning.Value {
	v := owning.NewValue(initial, s.hooks...)
	s.register(v)

	return v
}

// NewDefaultValue creates a value with the default state.
func (s *Session) NewDefaultValue() *owning.Value {
	return s.NewValue(owning.DefaultState)
}

// CopyOf copy-constructs a value from src and registers it. The observers
// carry over from src.
func (s *Session) CopyOf(src *owning.Value) *owning.Value {
	v := owning.CopyOf(src)
	s.register(v)

	return v
}

// MoveOf move-constructs a value from src and registers it. src stays
// registered in its moved-from state.
func (s *Session) MoveOf(src *owning.Value) *owning.Value {
	v := owning.MoveOf(src)
	s.register(v)

	return v
}

// Values returns all the values registered, in creation order.
func (s *Session) Values() []*owning.Value {
	return s.values
}

// ValueByName returns the value with the given name.
func (s *Session) ValueByName(name string) *owning.Value {
	index, found := s.valueNameIndex[name]
	if !found {
		panic("value " + name + " not registered")
	}

	return s.values[index]
}

// Terminate flushes and closes the journal of the session.
func (s *Session) Terminate() {
	if s.dataRecorder != nil {
		err := s.dataRecorder.Close()
		if err != nil {
			panic(err)
		}
	}
}

func (s *Session) register(v *owning.Value) {
	name := v.Name()
	if _, found := s.valueNameIndex[name]; found {
		panic("value " + name + " already registered")
	}

	s.values = append(s.values, v)
	s.valueNameIndex[name] = len(s.values) - 1

	if s.monitor != nil {
		s.monitor.RegisterValue(v)
	}
}

package journal

import (
	"context"

	"github.com/sarchlab/lifeline/owning"
)

// TransitionTable is the table that holds one row per lifecycle transition.
const TransitionTable = "lifecycle_transitions"

// A TransitionEntry is one recorded lifecycle transition. Seq orders the
// transitions of a run.
type TransitionEntry struct {
	Seq        int
	Object     string
	Op         string
	Value      int
	Auxiliary  int
	AuxPresent bool
}

// A Recorder persists lifecycle transitions into a DataRecorder backend. It
// implements owning.TransitionRecorder.
type Recorder struct {
	backend DataRecorder
	nextSeq int
}

// NewRecorder creates a Recorder and its table in the backend.
func NewRecorder(backend DataRecorder) *Recorder {
	r := &Recorder{backend: backend}
	backend.CreateTable(TransitionTable, TransitionEntry{})

	return r
}

// RecordTransition writes one transition row.
func (r *Recorder) RecordTransition(t owning.Transition) {
	r.nextSeq++

	r.backend.InsertData(TransitionTable, TransitionEntry{
		Seq:        r.nextSeq,
		Object:     t.Object,
		Op:         t.Op,
		Value:      t.Value,
		Auxiliary:  t.Auxiliary,
		AuxPresent: t.AuxPresent,
	})
}

// ReadTransitions loads all the transitions recorded in the database at path,
// in the order they happened.
func ReadTransitions(
	ctx context.Context,
	path string,
) ([]*TransitionEntry, error) {
	reader := NewSQLiteReader(path)
	defer reader.Close()

	reader.MapTable(TransitionTable, TransitionEntry{})

	rows, _, err := reader.Query(ctx, TransitionTable, QueryParams{
		OrderBy: "Seq ASC",
	})
	if err != nil {
		return nil, err
	}

	entries := make([]*TransitionEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.(*TransitionEntry))
	}

	return entries, nil
}

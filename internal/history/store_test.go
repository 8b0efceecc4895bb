package history

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/example/freehand/internal/brush"
	"github.com/example/freehand/internal/geometry"
)

func stroke(x float32) *geometry.Path {
	b := geometry.NewBuilder()
	b.Begin(x, 0)
	b.Extend(x+1, 1)
	return b.Finish()
}

func commitN(s *Store, n int) []*Entry {
	var out []*Entry
	for i := 0; i < n; i++ {
		out = append(out, s.Commit(stroke(float32(i)), brush.NewPaintOptions()))
	}
	return out
}

func ids(es []*Entry) []string {
	var out []string
	for _, e := range es {
		out = append(out, e.ID.String())
	}
	return out
}

func TestUndoAll(t *testing.T) {
	s := New()
	commitN(s, 4)
	for i := 0; i < 4; i++ {
		s.Undo()
	}
	if s.CommittedCount() != 0 || s.UndoneCount() != 4 {
		t.Fatalf("committed=%d undone=%d", s.CommittedCount(), s.UndoneCount())
	}
	if s.IsUndoAvailable() || !s.IsRedoAvailable() {
		t.Fatalf("availability undo=%v redo=%v", s.IsUndoAvailable(), s.IsRedoAvailable())
	}
}

func TestRedoRestoresSameEntry(t *testing.T) {
	s := New()
	es := commitN(s, 2)
	s.Undo()
	if s.UndoneTop() != es[1] {
		t.Fatalf("undone top is not the latest commit")
	}
	s.Redo()
	if s.Top() != es[1] {
		t.Fatalf("redo restored a different entry")
	}
	if s.At(1) != es[1] {
		t.Fatalf("At(1) differs")
	}
}

func TestCommitAfterUndoClearsRedo(t *testing.T) {
	s := New()
	commitN(s, 3)
	s.Undo()
	s.Undo()
	s.Commit(stroke(9), brush.NewPaintOptions())
	if s.IsRedoAvailable() {
		t.Fatalf("redo should be unavailable after a commit")
	}
	if s.CommittedCount() != 2 {
		t.Fatalf("committed = %d, want 2", s.CommittedCount())
	}
}

func TestClearWithSavingRedoRestoresOrder(t *testing.T) {
	s := New()
	es := commitN(s, 3)
	s.ClearWithSaving()
	if s.CommittedCount() != 0 || s.UndoneCount() != 3 {
		t.Fatalf("committed=%d undone=%d", s.CommittedCount(), s.UndoneCount())
	}
	for i := 0; i < 3; i++ {
		s.Redo()
	}
	if diff := cmp.Diff(ids(es), ids(s.Entries())); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestClearWithSavingDropsPreviouslyUndone(t *testing.T) {
	s := New()
	commitN(s, 3)
	s.Undo()
	s.ClearWithSaving()
	if s.UndoneCount() != 2 {
		t.Fatalf("undone = %d, want 2", s.UndoneCount())
	}
}

func TestClearHard(t *testing.T) {
	s := New()
	commitN(s, 3)
	s.Undo()
	s.ClearHard()
	if s.IsUndoAvailable() || s.IsRedoAvailable() {
		t.Fatalf("expected empty store")
	}
	s.Redo()
	if s.CommittedCount() != 0 {
		t.Fatalf("redo after hard clear restored %d", s.CommittedCount())
	}
}

func TestEmptyPopsAreNoOps(t *testing.T) {
	s := New()
	calls := 0
	s.Observe(func(undo, redo bool) { calls++ })
	s.Undo()
	s.Redo()
	if s.CommittedCount() != 0 || s.UndoneCount() != 0 {
		t.Fatalf("empty pops changed state")
	}
	if calls != 2 {
		t.Fatalf("observer calls = %d, want 2", calls)
	}
}

func TestObserverSeesAvailability(t *testing.T) {
	s := New()
	type state struct{ Undo, Redo bool }
	var got []state
	s.Observe(func(undo, redo bool) { got = append(got, state{undo, redo}) })
	commitN(s, 1)
	s.Undo()
	s.Redo()
	s.ClearWithSaving()
	s.ClearHard()
	want := []state{{true, false}, {false, true}, {true, false}, {false, true}, {false, false}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("notifications (-want +got):\n%s", diff)
	}
	s.ClearObservers()
	s.Undo()
	if len(got) != len(want) {
		t.Fatalf("observer called after ClearObservers")
	}
}

func TestAtOutOfRangePanics(t *testing.T) {
	s := New()
	commitN(s, 1)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	s.At(1)
}

func TestEntriesIsCopy(t *testing.T) {
	s := New()
	commitN(s, 2)
	es := s.Entries()
	es[0] = nil
	if s.At(0) == nil {
		t.Fatalf("Entries exposed the internal slice")
	}
}

func TestEntryIDsAreUnique(t *testing.T) {
	s := New()
	es := commitN(s, 2)
	if es[0].ID == es[1].ID {
		t.Fatalf("duplicate ids")
	}
	if es[0].Paint.Width != brush.DefaultStrokeWidth {
		t.Fatalf("paint not stored: %+v", es[0].Paint)
	}
}

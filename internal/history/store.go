// Package history keeps the committed and undone strokes of a drawing.
package history

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/example/freehand/internal/brush"
	"github.com/example/freehand/internal/geometry"
	"github.com/example/freehand/internal/logging"
)

// Entry is one completed stroke.
type Entry struct {
	ID    uuid.UUID
	Path  *geometry.Path
	Paint brush.PaintOptions
}

// Observer is told whether undo and redo are available after every action.
type Observer func(undo, redo bool)

// Store holds two stacks: committed strokes in drawing order and undone
// strokes with the most recently undone on top.
type Store struct {
	committed []*Entry
	undone    []*Entry
	observers []Observer
}

// New returns an empty store.
func New() *Store { return &Store{} }

// Observe registers fn. Observers run synchronously in registration order.
func (s *Store) Observe(fn Observer) {
	if fn != nil {
		s.observers = append(s.observers, fn)
	}
}

// ClearObservers drops every registered observer.
func (s *Store) ClearObservers() { s.observers = nil }

func (s *Store) notify() {
	undo, redo := s.IsUndoAvailable(), s.IsRedoAvailable()
	for _, fn := range s.observers {
		fn(undo, redo)
	}
}

// Commit appends a stroke and forgets anything that could have been redone.
func (s *Store) Commit(path *geometry.Path, paint brush.PaintOptions) *Entry {
	e := &Entry{ID: uuid.New(), Path: path, Paint: paint}
	s.committed = append(s.committed, e)
	clear(s.undone)
	s.undone = s.undone[:0]
	logging.Logger().Debug("history: commit", "id", e.ID, "committed", len(s.committed))
	s.notify()
	return e
}

// Undo moves the latest committed stroke onto the undone stack. It is a
// no-op when nothing is committed.
func (s *Store) Undo() {
	if e := pop(&s.committed); e != nil {
		s.undone = append(s.undone, e)
		logging.Logger().Debug("history: undo", "id", e.ID)
	}
	s.notify()
}

// Redo restores the most recently undone stroke. It is a no-op when nothing
// has been undone.
func (s *Store) Redo() {
	if e := pop(&s.undone); e != nil {
		s.committed = append(s.committed, e)
		logging.Logger().Debug("history: redo", "id", e.ID)
	}
	s.notify()
}

// ClearWithSaving empties the canvas but keeps every stroke redoable.
// Repeated Redo calls bring the strokes back in their original order.
// Anything that was already undone is discarded.
func (s *Store) ClearWithSaving() {
	saved := make([]*Entry, 0, len(s.committed))
	for i := len(s.committed) - 1; i >= 0; i-- {
		saved = append(saved, s.committed[i])
	}
	s.committed = nil
	s.undone = saved
	logging.Logger().Debug("history: clear with saving", "saved", len(saved))
	s.notify()
}

// ClearHard forgets every stroke.
func (s *Store) ClearHard() {
	s.committed = nil
	s.undone = nil
	logging.Logger().Debug("history: clear")
	s.notify()
}

func (s *Store) IsUndoAvailable() bool { return len(s.committed) > 0 }

func (s *Store) IsRedoAvailable() bool { return len(s.undone) > 0 }

func (s *Store) CommittedCount() int { return len(s.committed) }

func (s *Store) UndoneCount() int { return len(s.undone) }

// At returns the i-th committed stroke in drawing order. It panics when i
// is out of range.
func (s *Store) At(i int) *Entry {
	if i < 0 || i >= len(s.committed) {
		panic(fmt.Sprintf("history: index %d out of range [0,%d)", i, len(s.committed)))
	}
	return s.committed[i]
}

// Entries returns the committed strokes in drawing order. The slice is a
// copy; the entries are shared.
func (s *Store) Entries() []*Entry {
	out := make([]*Entry, len(s.committed))
	copy(out, s.committed)
	return out
}

// Top returns the latest committed stroke or nil.
func (s *Store) Top() *Entry { return top(s.committed) }

// UndoneTop returns the stroke the next Redo would restore, or nil.
func (s *Store) UndoneTop() *Entry { return top(s.undone) }

func top(stack []*Entry) *Entry {
	if len(stack) == 0 {
		return nil
	}
	return stack[len(stack)-1]
}

func pop(stack *[]*Entry) *Entry {
	n := len(*stack)
	if n == 0 {
		return nil
	}
	e := (*stack)[n-1]
	(*stack)[n-1] = nil
	*stack = (*stack)[:n-1]
	return e
}

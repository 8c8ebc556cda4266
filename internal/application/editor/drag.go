package editor

import (
	"github.com/khoahotran/dynamic-profile/pkg/apperror"
)

// dragState follows the dragged record by id, so edits made elsewhere during
// a gesture cannot make it move the wrong record.
type dragState struct {
	id     string
	origin int
}

func (e *ListEditor[T]) indexOf(id string) int {
	for i, rec := range e.Items() {
		if rec.GetID() == id {
			return i
		}
	}
	return -1
}

// BeginDrag starts a drag gesture on the record at index.
func (e *ListEditor[T]) BeginDrag(index int) error {
	list := e.Items()
	if err := checkIndex(e.kind, index, len(list)); err != nil {
		return err
	}
	e.dragMu.Lock()
	defer e.dragMu.Unlock()
	e.drag = &dragState{id: list[index].GetID(), origin: index}
	return nil
}

// Dragging reports whether a gesture is in progress.
func (e *ListEditor[T]) Dragging() bool {
	e.dragMu.Lock()
	defer e.dragMu.Unlock()
	return e.drag != nil
}

// DragOver moves the dragged record to index as the pointer crosses into
// it. Each crossing is committed to the store. It reports whether the order
// changed.
func (e *ListEditor[T]) DragOver(index int) (bool, error) {
	e.dragMu.Lock()
	defer e.dragMu.Unlock()
	if e.drag == nil {
		return false, apperror.NewConflict("drag", "no drag in progress")
	}
	from := e.indexOf(e.drag.id)
	if from < 0 {
		e.drag = nil
		return false, apperror.NewNotFound(e.noun, "dragged record")
	}
	if from == index {
		return false, nil
	}
	if err := e.Reorder(from, index); err != nil {
		return false, err
	}
	return true, nil
}

// Drop ends the gesture, keeping the current order.
func (e *ListEditor[T]) Drop() error {
	e.dragMu.Lock()
	defer e.dragMu.Unlock()
	if e.drag == nil {
		return apperror.NewConflict("drag", "no drag in progress")
	}
	e.drag = nil
	return nil
}

// Cancel ends the gesture and moves the record back to where it started.
func (e *ListEditor[T]) Cancel() error {
	e.dragMu.Lock()
	defer e.dragMu.Unlock()
	if e.drag == nil {
		return nil
	}
	d := e.drag
	e.drag = nil
	from := e.indexOf(d.id)
	if from < 0 || from == d.origin {
		return nil
	}
	to := d.origin
	if n := e.Len(); to >= n {
		to = n - 1
	}
	return e.Reorder(from, to)
}

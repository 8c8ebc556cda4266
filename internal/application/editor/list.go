package editor

import (
	"context"
	"fmt"
	"sync"

	"github.com/khoahotran/dynamic-profile/internal/application/service"
	"github.com/khoahotran/dynamic-profile/internal/domain/profile"
	"github.com/khoahotran/dynamic-profile/pkg/apperror"
	"github.com/khoahotran/dynamic-profile/pkg/validation"
)

// Accessor reads and writes one sequence of the document.
type Accessor[T any] struct {
	Get func(doc *profile.Document) []T
	Set func(doc *profile.Document, list []T)
}

// ListEditor edits one ordered sequence of records.
type ListEditor[T profile.Record[T]] struct {
	store     DocumentStore
	kind      string
	noun      string
	access    Accessor[T]
	newRecord func() T
	rules     validation.FieldRules
	errors    *errorBook

	dragMu sync.Mutex
	drag   *dragState
}

type ListConfig[T profile.Record[T]] struct {
	// Kind names the sequence in errors, e.g. "projects".
	Kind string
	// Noun is the singular shown in confirmations, e.g. "project".
	Noun      string
	Access    Accessor[T]
	NewRecord func() T
	Rules     validation.FieldRules
}

func NewListEditor[T profile.Record[T]](s DocumentStore, cfg ListConfig[T]) *ListEditor[T] {
	return &ListEditor[T]{
		store:     s,
		kind:      cfg.Kind,
		noun:      cfg.Noun,
		access:    cfg.Access,
		newRecord: cfg.NewRecord,
		rules:     cfg.Rules,
		errors:    newErrorBook(),
	}
}

func (e *ListEditor[T]) Kind() string { return e.kind }

// Items returns the current sequence.
func (e *ListEditor[T]) Items() []T {
	return e.access.Get(e.store.Current())
}

func (e *ListEditor[T]) Len() int {
	return len(e.Items())
}

// Add appends a record with default values and returns its id.
func (e *ListEditor[T]) Add() (string, error) {
	rec := e.newRecord()
	_, err := e.store.Update(func(prev *profile.Document) (*profile.Document, error) {
		e.access.Set(prev, append(e.access.Get(prev), rec))
		return prev, nil
	})
	if err != nil {
		return "", err
	}
	return rec.GetID(), nil
}

// Update replaces one field of the record at index.
func (e *ListEditor[T]) Update(index int, field, value string) error {
	_, err := e.store.Update(func(prev *profile.Document) (*profile.Document, error) {
		list := e.access.Get(prev)
		if err := checkIndex(e.kind, index, len(list)); err != nil {
			return nil, err
		}
		next, err := list[index].WithField(field, value)
		if err != nil {
			return nil, apperror.NewInvalidInput(fmt.Sprintf("cannot set %s.%s", e.kind, field), err)
		}
		list[index] = next
		e.access.Set(prev, list)
		return prev, nil
	})
	return err
}

// Remove deletes the record at index once c confirms. A declined
// confirmation leaves the document untouched and returns false.
func (e *ListEditor[T]) Remove(ctx context.Context, index int, c service.Confirmer) (bool, error) {
	list := e.Items()
	if err := checkIndex(e.kind, index, len(list)); err != nil {
		return false, err
	}
	id := list[index].GetID()

	prompt := fmt.Sprintf("Are you sure you want to delete this %s? This action cannot be undone.", e.noun)
	if c == nil || !c.Confirm(ctx, prompt) {
		return false, nil
	}

	_, err := e.store.Update(func(prev *profile.Document) (*profile.Document, error) {
		cur := e.access.Get(prev)
		out := make([]T, 0, len(cur))
		for _, rec := range cur {
			if rec.GetID() != id {
				out = append(out, rec)
			}
		}
		if len(out) == len(cur) {
			return nil, apperror.NewNotFound(e.noun, id)
		}
		e.access.Set(prev, out)
		return prev, nil
	})
	if err != nil {
		return false, err
	}
	e.errors.drop(id)
	return true, nil
}

// Reorder moves the record at from to position to.
func (e *ListEditor[T]) Reorder(from, to int) error {
	_, err := e.store.Update(func(prev *profile.Document) (*profile.Document, error) {
		list := e.access.Get(prev)
		if err := checkIndex(e.kind, from, len(list)); err != nil {
			return nil, err
		}
		if err := checkIndex(e.kind, to, len(list)); err != nil {
			return nil, err
		}
		if from != to {
			e.access.Set(prev, move(list, from, to))
		}
		return prev, nil
	})
	return err
}

// Validate evaluates field's rules on value and records the result against
// the record id. It returns the message, or "" when the value is fine.
func (e *ListEditor[T]) Validate(id, field, value string) string {
	msg := e.rules.Check(sharedValidator(), field, value)
	e.errors.set(id, field, msg)
	return msg
}

// Errors returns the current validation messages of a record by field.
func (e *ListEditor[T]) Errors(id string) map[string]string {
	return e.errors.get(id)
}

// Package editor implements the admin-side list, personal info and settings
// editors. Every mutation goes through the Document Store; validation
// feedback is advisory and never blocks an edit.
package editor

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/khoahotran/dynamic-profile/internal/application/store"
	"github.com/khoahotran/dynamic-profile/internal/domain/profile"
	"github.com/khoahotran/dynamic-profile/pkg/apperror"
	"github.com/khoahotran/dynamic-profile/pkg/validation"
)

// DocumentStore is the part of store.Store the editors need.
type DocumentStore interface {
	Current() *profile.Document
	Update(fn store.Updater) (*profile.Document, error)
}

var sharedValidator = sync.OnceValue(func() *validator.Validate {
	return validation.New()
})

// errorBook holds validation messages keyed by record id, then field.
type errorBook struct {
	mu sync.Mutex
	m  map[string]map[string]string
}

func newErrorBook() *errorBook {
	return &errorBook{m: map[string]map[string]string{}}
}

func (b *errorBook) set(id, field, msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if msg == "" {
		if fields, ok := b.m[id]; ok {
			delete(fields, field)
			if len(fields) == 0 {
				delete(b.m, id)
			}
		}
		return
	}
	if b.m[id] == nil {
		b.m[id] = map[string]string{}
	}
	b.m[id][field] = msg
}

func (b *errorBook) get(id string) map[string]string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make(map[string]string, len(b.m[id]))
	for k, v := range b.m[id] {
		out[k] = v
	}
	return out
}

func (b *errorBook) drop(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.m, id)
}

func checkIndex(kind string, index, length int) error {
	if index < 0 || index >= length {
		return apperror.NewInvalidInput(fmt.Sprintf("%s index %d out of range [0,%d)", kind, index, length), nil)
	}
	return nil
}

// move removes the element at from and reinserts it at to.
func move[T any](list []T, from, to int) []T {
	out := make([]T, 0, len(list))
	out = append(out, list[:from]...)
	out = append(out, list[from+1:]...)
	item := list[from]
	out = append(out[:to], append([]T{item}, out[to:]...)...)
	return out
}

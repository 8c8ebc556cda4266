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

// SkillsEditor edits the three skill categories. Each category is an
// independent list; a drag never crosses categories.
type SkillsEditor struct {
	lists map[profile.SkillCategory]*ListEditor[profile.Skill]

	mu      sync.Mutex
	dragCat profile.SkillCategory
}

func NewSkillsEditor(s DocumentStore) *SkillsEditor {
	errs := newErrorBook()
	lists := make(map[profile.SkillCategory]*ListEditor[profile.Skill], len(profile.SkillCategories))
	for _, c := range profile.SkillCategories {
		ed := NewListEditor(s, ListConfig[profile.Skill]{
			Kind: "skills." + string(c),
			Noun: "skill",
			Access: Accessor[profile.Skill]{
				Get: func(d *profile.Document) []profile.Skill { return d.Skills.Get(c) },
				Set: func(d *profile.Document, l []profile.Skill) { d.Skills.Set(c, l) },
			},
			NewRecord: profile.NewSkill,
			Rules: validation.FieldRules{
				"name": {validation.Required("Skill name is required.")},
			},
		})
		// Skill ids are unique across categories, so one book serves all.
		ed.errors = errs
		lists[c] = ed
	}
	return &SkillsEditor{lists: lists}
}

// Category returns the editor of one category.
func (e *SkillsEditor) Category(c profile.SkillCategory) (*ListEditor[profile.Skill], error) {
	ed, ok := e.lists[c]
	if !ok {
		return nil, apperror.NewInvalidInput(fmt.Sprintf("unknown skill category %q", c), nil)
	}
	return ed, nil
}

func (e *SkillsEditor) Add(c profile.SkillCategory) (string, error) {
	ed, err := e.Category(c)
	if err != nil {
		return "", err
	}
	return ed.Add()
}

func (e *SkillsEditor) Update(c profile.SkillCategory, index int, field, value string) error {
	ed, err := e.Category(c)
	if err != nil {
		return err
	}
	return ed.Update(index, field, value)
}

func (e *SkillsEditor) Remove(ctx context.Context, c profile.SkillCategory, index int, confirm service.Confirmer) (bool, error) {
	ed, err := e.Category(c)
	if err != nil {
		return false, err
	}
	return ed.Remove(ctx, index, confirm)
}

func (e *SkillsEditor) Reorder(c profile.SkillCategory, from, to int) error {
	ed, err := e.Category(c)
	if err != nil {
		return err
	}
	return ed.Reorder(from, to)
}

func (e *SkillsEditor) Validate(id, field, value string) string {
	return e.lists[profile.SkillFrontend].Validate(id, field, value)
}

func (e *SkillsEditor) Errors(id string) map[string]string {
	return e.lists[profile.SkillFrontend].Errors(id)
}

// BeginDrag starts a gesture on {category, index}, ending any other one.
func (e *SkillsEditor) BeginDrag(c profile.SkillCategory, index int) error {
	ed, err := e.Category(c)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.dragCat != "" && e.dragCat != c {
		_ = e.lists[e.dragCat].Drop()
	}
	if err := ed.BeginDrag(index); err != nil {
		return err
	}
	e.dragCat = c
	return nil
}

// DragOver commits a move only when the target is in the drag's own
// category.
func (e *SkillsEditor) DragOver(c profile.SkillCategory, index int) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.dragCat == "" {
		return false, apperror.NewConflict("drag", "no drag in progress")
	}
	if c != e.dragCat {
		return false, nil
	}
	return e.lists[c].DragOver(index)
}

func (e *SkillsEditor) Drop() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.dragCat == "" {
		return apperror.NewConflict("drag", "no drag in progress")
	}
	err := e.lists[e.dragCat].Drop()
	e.dragCat = ""
	return err
}

func (e *SkillsEditor) Cancel() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.dragCat == "" {
		return nil
	}
	err := e.lists[e.dragCat].Cancel()
	e.dragCat = ""
	return err
}

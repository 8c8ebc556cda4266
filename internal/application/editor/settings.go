package editor

import (
	"encoding/json"
	"fmt"

	"github.com/khoahotran/dynamic-profile/internal/domain/profile"
	"github.com/khoahotran/dynamic-profile/pkg/apperror"
)

// SettingsEditor changes display, animation and AI settings. Values outside
// the closed enum sets are rejected.
type SettingsEditor struct {
	store DocumentStore
}

func NewSettingsEditor(s DocumentStore) *SettingsEditor {
	return &SettingsEditor{store: s}
}

func (e *SettingsEditor) update(fn func(s *profile.Settings) error) (profile.Settings, error) {
	doc, err := e.store.Update(func(prev *profile.Document) (*profile.Document, error) {
		if err := fn(&prev.Settings); err != nil {
			return nil, err
		}
		if err := prev.Settings.Validate(); err != nil {
			return nil, apperror.NewInvalidInput("invalid settings", err)
		}
		return prev, nil
	})
	if err != nil {
		return profile.Settings{}, err
	}
	return doc.Settings, nil
}

func (e *SettingsEditor) Current() profile.Settings {
	return e.store.Current().Settings
}

func (e *SettingsEditor) SetLayout(l profile.Layout) (profile.Settings, error) {
	return e.update(func(s *profile.Settings) error {
		s.Layout = l
		return nil
	})
}

func (e *SettingsEditor) SetTheme(t profile.Theme) (profile.Settings, error) {
	return e.update(func(s *profile.Settings) error {
		s.Theme = t
		return nil
	})
}

// ToggleSection shows or hides one profile section.
func (e *SettingsEditor) ToggleSection(key profile.SectionKey, on bool) (profile.Settings, error) {
	return e.update(func(s *profile.Settings) error {
		if err := s.Sections.Set(key, on); err != nil {
			return apperror.NewInvalidInput(fmt.Sprintf("unknown section %q", key), err)
		}
		return nil
	})
}

func (e *SettingsEditor) SetAnimations(a profile.AnimationSettings) (profile.Settings, error) {
	return e.update(func(s *profile.Settings) error {
		s.Animations = a
		return nil
	})
}

func (e *SettingsEditor) SetAI(ai profile.AISettings) (profile.Settings, error) {
	return e.update(func(s *profile.Settings) error {
		s.AI = ai
		return nil
	})
}

// Merge applies a partial settings JSON object. Keys absent from raw keep
// their values; nested objects merge the same way.
func (e *SettingsEditor) Merge(raw []byte) (profile.Settings, error) {
	return e.update(func(s *profile.Settings) error {
		if err := json.Unmarshal(raw, s); err != nil {
			return apperror.NewInvalidInput("invalid settings JSON", err)
		}
		return nil
	})
}

package editor

import (
	"context"

	"github.com/khoahotran/dynamic-profile/internal/application/service"
	"github.com/khoahotran/dynamic-profile/internal/domain/profile"
	"github.com/khoahotran/dynamic-profile/pkg/validation"
)

const (
	KindExperience     = "experience"
	KindEducation      = "education"
	KindProjects       = "projects"
	KindCertifications = "certifications"
	KindAwards         = "awards"
	KindHobbies        = "hobbies"
)

// Kinds lists the record sequences in admin tab order.
var Kinds = []string{KindExperience, KindEducation, KindProjects, KindCertifications, KindAwards, KindHobbies}

// List is a ListEditor with its record type erased, for callers that pick
// the sequence at runtime.
type List interface {
	Kind() string
	Len() int
	Add() (string, error)
	Update(index int, field, value string) error
	Remove(ctx context.Context, index int, c service.Confirmer) (bool, error)
	Reorder(from, to int) error
	BeginDrag(index int) error
	DragOver(index int) (bool, error)
	Drop() error
	Cancel() error
	Validate(id, field, value string) string
	Errors(id string) map[string]string
}

func NewExperienceEditor(s DocumentStore) *ListEditor[profile.Experience] {
	return NewListEditor(s, ListConfig[profile.Experience]{
		Kind: KindExperience,
		Noun: "experience",
		Access: Accessor[profile.Experience]{
			Get: func(d *profile.Document) []profile.Experience { return d.Experience },
			Set: func(d *profile.Document, l []profile.Experience) { d.Experience = l },
		},
		NewRecord: profile.NewExperience,
		Rules: validation.FieldRules{
			"title":   {validation.Required("")},
			"company": {validation.Required("")},
		},
	})
}

func NewEducationEditor(s DocumentStore) *ListEditor[profile.Education] {
	return NewListEditor(s, ListConfig[profile.Education]{
		Kind: KindEducation,
		Noun: "education entry",
		Access: Accessor[profile.Education]{
			Get: func(d *profile.Document) []profile.Education { return d.Education },
			Set: func(d *profile.Document, l []profile.Education) { d.Education = l },
		},
		NewRecord: profile.NewEducation,
		Rules: validation.FieldRules{
			"school": {validation.Required("")},
			"degree": {validation.Required("")},
		},
	})
}

func NewProjectEditor(s DocumentStore) *ListEditor[profile.Project] {
	return NewListEditor(s, ListConfig[profile.Project]{
		Kind: KindProjects,
		Noun: "project",
		Access: Accessor[profile.Project]{
			Get: func(d *profile.Document) []profile.Project { return d.Projects },
			Set: func(d *profile.Document, l []profile.Project) { d.Projects = l },
		},
		NewRecord: profile.NewProject,
		Rules: validation.FieldRules{
			"name":     {validation.Required("Project name is required.")},
			"image":    {validation.URL()},
			"demoLink": {validation.URL()},
			"repoLink": {validation.URL()},
		},
	})
}

func NewCertificationEditor(s DocumentStore) *ListEditor[profile.Certification] {
	return NewListEditor(s, ListConfig[profile.Certification]{
		Kind: KindCertifications,
		Noun: "certification",
		Access: Accessor[profile.Certification]{
			Get: func(d *profile.Document) []profile.Certification { return d.Certifications },
			Set: func(d *profile.Document, l []profile.Certification) { d.Certifications = l },
		},
		NewRecord: profile.NewCertification,
		Rules: validation.FieldRules{
			"name":          {validation.Required("Certificate name is required.")},
			"credentialUrl": {validation.URL()},
			"image":         {validation.URL()},
		},
	})
}

func NewAwardEditor(s DocumentStore) *ListEditor[profile.Award] {
	return NewListEditor(s, ListConfig[profile.Award]{
		Kind: KindAwards,
		Noun: "award",
		Access: Accessor[profile.Award]{
			Get: func(d *profile.Document) []profile.Award { return d.Awards },
			Set: func(d *profile.Document, l []profile.Award) { d.Awards = l },
		},
		NewRecord: profile.NewAward,
		Rules: validation.FieldRules{
			"name":          {validation.Required("")},
			"issuer":        {validation.Required("")},
			"attachmentUrl": {validation.URL()},
		},
	})
}

func NewHobbyEditor(s DocumentStore) *ListEditor[profile.Hobby] {
	return NewListEditor(s, ListConfig[profile.Hobby]{
		Kind: KindHobbies,
		Noun: "hobby",
		Access: Accessor[profile.Hobby]{
			Get: func(d *profile.Document) []profile.Hobby { return d.Hobbies },
			Set: func(d *profile.Document, l []profile.Hobby) { d.Hobbies = l },
		},
		NewRecord: profile.NewHobby,
		Rules: validation.FieldRules{
			"name":  {validation.Required("Hobby name is required.")},
			"link":  {validation.URL()},
			"image": {validation.URL()},
		},
	})
}

// Editors bundles every editor bound to one store.
type Editors struct {
	Experience     *ListEditor[profile.Experience]
	Education      *ListEditor[profile.Education]
	Projects       *ListEditor[profile.Project]
	Certifications *ListEditor[profile.Certification]
	Awards         *ListEditor[profile.Award]
	Hobbies        *ListEditor[profile.Hobby]
	Skills         *SkillsEditor
	Personal       *PersonalInfoEditor
	Settings       *SettingsEditor
}

func NewEditors(s DocumentStore) *Editors {
	return &Editors{
		Experience:     NewExperienceEditor(s),
		Education:      NewEducationEditor(s),
		Projects:       NewProjectEditor(s),
		Certifications: NewCertificationEditor(s),
		Awards:         NewAwardEditor(s),
		Hobbies:        NewHobbyEditor(s),
		Skills:         NewSkillsEditor(s),
		Personal:       NewPersonalInfoEditor(s),
		Settings:       NewSettingsEditor(s),
	}
}

// List returns the record editor for kind.
func (e *Editors) List(kind string) (List, bool) {
	switch kind {
	case KindExperience:
		return e.Experience, true
	case KindEducation:
		return e.Education, true
	case KindProjects:
		return e.Projects, true
	case KindCertifications:
		return e.Certifications, true
	case KindAwards:
		return e.Awards, true
	case KindHobbies:
		return e.Hobbies, true
	}
	return nil, false
}

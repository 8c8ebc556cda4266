package profile

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is implemented by every entry of a repeating section. WithField
// returns a copy of the record with one field replaced; the id is never
// settable through it.
type Record[T any] interface {
	GetID() string
	WithField(field, value string) (T, error)
}

type Experience struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Description string   `json:"description"`
	SkillsUsed  []string `json:"skillsUsed"`
}

type Education struct {
	ID           string `json:"id"`
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldOfStudy"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Description  string `json:"description"`
}

type Project struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	RepoLink    string   `json:"repoLink"`
	DemoLink    string   `json:"demoLink"`
	Tags        []string `json:"tags"`
}

type Certification struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	IssuingOrganization string `json:"issuingOrganization"`
	Date                string `json:"date"`
	CredentialURL       string `json:"credentialUrl"`
	Image               string `json:"image,omitempty"`
}

type Award struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Issuer        string `json:"issuer"`
	Date          string `json:"date"`
	Description   string `json:"description"`
	AttachmentURL string `json:"attachmentUrl"`
}

type Hobby struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Link        string `json:"link"`
}

type Skill struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"`
	Icon  string `json:"icon,omitempty"`
}

func unknownField(kind, field string) error {
	return fmt.Errorf("%w: %s has no field %q", ErrUnknownField, kind, field)
}

// SplitList parses a comma separated list, trimming items and dropping empties.
func SplitList(value string) []string {
	items := make([]string, 0)
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			items = append(items, p)
		}
	}
	return items
}

// ClampLevel keeps a skill level inside 0..100.
func ClampLevel(level int) int {
	return max(0, min(100, level))
}

func (e Experience) GetID() string { return e.ID }

func (e Experience) WithField(field, value string) (Experience, error) {
	switch field {
	case "title":
		e.Title = value
	case "company":
		e.Company = value
	case "startDate":
		e.StartDate = value
	case "endDate":
		e.EndDate = value
	case "description":
		e.Description = value
	case "skillsUsed":
		e.SkillsUsed = SplitList(value)
	default:
		return e, unknownField("experience", field)
	}
	return e, nil
}

func (e Education) GetID() string { return e.ID }

func (e Education) WithField(field, value string) (Education, error) {
	switch field {
	case "school":
		e.School = value
	case "degree":
		e.Degree = value
	case "fieldOfStudy":
		e.FieldOfStudy = value
	case "startDate":
		e.StartDate = value
	case "endDate":
		e.EndDate = value
	case "description":
		e.Description = value
	default:
		return e, unknownField("education", field)
	}
	return e, nil
}

func (p Project) GetID() string { return p.ID }

func (p Project) WithField(field, value string) (Project, error) {
	switch field {
	case "name":
		p.Name = value
	case "description":
		p.Description = value
	case "image":
		p.Image = value
	case "repoLink":
		p.RepoLink = value
	case "demoLink":
		p.DemoLink = value
	case "tags":
		p.Tags = SplitList(value)
	default:
		return p, unknownField("project", field)
	}
	return p, nil
}

func (c Certification) GetID() string { return c.ID }

func (c Certification) WithField(field, value string) (Certification, error) {
	switch field {
	case "name":
		c.Name = value
	case "issuingOrganization":
		c.IssuingOrganization = value
	case "date":
		c.Date = value
	case "credentialUrl":
		c.CredentialURL = value
	case "image":
		c.Image = value
	default:
		return c, unknownField("certification", field)
	}
	return c, nil
}

func (a Award) GetID() string { return a.ID }

func (a Award) WithField(field, value string) (Award, error) {
	switch field {
	case "name":
		a.Name = value
	case "issuer":
		a.Issuer = value
	case "date":
		a.Date = value
	case "description":
		a.Description = value
	case "attachmentUrl":
		a.AttachmentURL = value
	default:
		return a, unknownField("award", field)
	}
	return a, nil
}

func (h Hobby) GetID() string { return h.ID }

func (h Hobby) WithField(field, value string) (Hobby, error) {
	switch field {
	case "name":
		h.Name = value
	case "description":
		h.Description = value
	case "image":
		h.Image = value
	case "link":
		h.Link = value
	default:
		return h, unknownField("hobby", field)
	}
	return h, nil
}

func (s Skill) GetID() string { return s.ID }

func (s Skill) WithField(field, value string) (Skill, error) {
	switch field {
	case "name":
		s.Name = value
	case "icon":
		s.Icon = value
	case "level":
		level, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return s, fmt.Errorf("skill level %q is not a number: %w", value, err)
		}
		s.Level = ClampLevel(level)
	default:
		return s, unknownField("skill", field)
	}
	return s, nil
}

package profile

import (
	"errors"

	"github.com/google/uuid"
)

// CurrentSchemaVersion is stamped on every document the engine writes.
const CurrentSchemaVersion = 1

// StorageKey is the default key the whole document is persisted under.
const StorageKey = "profileData"

// ExportFileName is the file name offered for document exports.
const ExportFileName = "myDynamicProfile.json"

var (
	ErrUnknownField       = errors.New("unknown field")
	ErrUnsupportedVersion = errors.New("unsupported schema version")
	ErrInvalidPath        = errors.New("invalid document path")
	ErrImmutableField     = errors.New("field cannot be changed")
)

type Contact struct {
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	LinkedIn  string `json:"linkedin"`
	GitHub    string `json:"github"`
	Portfolio string `json:"portfolio"`
}

type PersonalInfo struct {
	Name      string  `json:"name"`
	Title     string  `json:"title"`
	Avatar    string  `json:"avatar"`
	HeroImage string  `json:"heroImage"`
	Bio       string  `json:"bio"`
	Contact   Contact `json:"contact"`
	CVFileURL string  `json:"cvFileUrl"`
}

// Document is the root aggregate: the whole profile, persisted as one JSON value.
type Document struct {
	SchemaVersion  int             `json:"schemaVersion"`
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Projects       []Project       `json:"projects"`
	Skills         Skills          `json:"skills"`
	Certifications []Certification `json:"certifications"`
	Awards         []Award         `json:"awards"`
	Hobbies        []Hobby         `json:"hobbies"`
	Settings       Settings        `json:"settings"`
}

// NewID returns a fresh opaque record id.
func NewID() string {
	return uuid.NewString()
}

// IDs lists every record id in document order, skills included.
func (d *Document) IDs() []string {
	var ids []string
	for _, e := range d.Experience {
		ids = append(ids, e.ID)
	}
	for _, e := range d.Education {
		ids = append(ids, e.ID)
	}
	for _, p := range d.Projects {
		ids = append(ids, p.ID)
	}
	for _, c := range SkillCategories {
		for _, s := range d.Skills.Get(c) {
			ids = append(ids, s.ID)
		}
	}
	for _, c := range d.Certifications {
		ids = append(ids, c.ID)
	}
	for _, a := range d.Awards {
		ids = append(ids, a.ID)
	}
	for _, h := range d.Hobbies {
		ids = append(ids, h.ID)
	}
	return ids
}

// EnsureIDs gives every record without an id, or with an id already used
// elsewhere in the document, a fresh one. Existing unique ids are kept.
func (d *Document) EnsureIDs() {
	seen := make(map[string]struct{})
	fix := func(id *string) {
		if _, dup := seen[*id]; *id == "" || dup {
			*id = NewID()
		}
		seen[*id] = struct{}{}
	}
	for i := range d.Experience {
		fix(&d.Experience[i].ID)
	}
	for i := range d.Education {
		fix(&d.Education[i].ID)
	}
	for i := range d.Projects {
		fix(&d.Projects[i].ID)
	}
	for _, c := range SkillCategories {
		list := d.Skills.Get(c)
		for i := range list {
			fix(&list[i].ID)
		}
	}
	for i := range d.Certifications {
		fix(&d.Certifications[i].ID)
	}
	for i := range d.Awards {
		fix(&d.Awards[i].ID)
	}
	for i := range d.Hobbies {
		fix(&d.Hobbies[i].ID)
	}
}

// normalize replaces nil sequences with empty ones so the document always
// serializes to arrays, never null.
func (d *Document) normalize() {
	d.Experience = copyList(d.Experience)
	d.Education = copyList(d.Education)
	d.Projects = copyList(d.Projects)
	d.Certifications = copyList(d.Certifications)
	d.Awards = copyList(d.Awards)
	d.Hobbies = copyList(d.Hobbies)
	d.Skills.Frontend = copyList(d.Skills.Frontend)
	d.Skills.Backend = copyList(d.Skills.Backend)
	d.Skills.Tools = copyList(d.Skills.Tools)
	for i := range d.Experience {
		d.Experience[i].SkillsUsed = copyList(d.Experience[i].SkillsUsed)
	}
	for i := range d.Projects {
		d.Projects[i].Tags = copyList(d.Projects[i].Tags)
	}
	for _, list := range [][]Skill{d.Skills.Frontend, d.Skills.Backend, d.Skills.Tools} {
		for i := range list {
			list[i].Level = ClampLevel(list[i].Level)
		}
	}
}

// Clone returns a deep copy; no slice is shared with the receiver.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	c := *d
	c.normalize()
	return &c
}

func copyList[T any](src []T) []T {
	return append(make([]T, 0, len(src)), src...)
}

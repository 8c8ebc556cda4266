package profile

// GeneratedContact carries only the contact fields an AI response returned.
type GeneratedContact struct {
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	LinkedIn  *string `json:"linkedin,omitempty"`
	GitHub    *string `json:"github,omitempty"`
	Portfolio *string `json:"portfolio,omitempty"`
}

// GeneratedPersonalInfo carries only the personal fields an AI response returned.
type GeneratedPersonalInfo struct {
	Name      *string           `json:"name,omitempty"`
	Title     *string           `json:"title,omitempty"`
	Bio       *string           `json:"bio,omitempty"`
	Avatar    *string           `json:"avatar,omitempty"`
	HeroImage *string           `json:"heroImage,omitempty"`
	CVFileURL *string           `json:"cvFileUrl,omitempty"`
	Contact   *GeneratedContact `json:"contact,omitempty"`
}

// GeneratedProfile is the partial document returned by whole-profile
// generation. A nil field means the key was absent from the response.
type GeneratedProfile struct {
	PersonalInfo   *GeneratedPersonalInfo `json:"personalInfo,omitempty"`
	Experience     []Experience           `json:"experience,omitempty"`
	Education      []Education            `json:"education,omitempty"`
	Projects       []Project              `json:"projects,omitempty"`
	Skills         *Skills                `json:"skills,omitempty"`
	Certifications []Certification        `json:"certifications,omitempty"`
}

func setIf(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// MergeGenerated applies gen onto a copy of doc. personalInfo and its contact
// block merge field by field; every sequence key present in gen replaces the
// existing sequence wholesale. Keys absent from gen are left untouched.
func MergeGenerated(doc *Document, gen *GeneratedProfile) *Document {
	next := doc.Clone()
	if gen == nil {
		return next
	}

	if pi := gen.PersonalInfo; pi != nil {
		setIf(&next.PersonalInfo.Name, pi.Name)
		setIf(&next.PersonalInfo.Title, pi.Title)
		setIf(&next.PersonalInfo.Bio, pi.Bio)
		setIf(&next.PersonalInfo.Avatar, pi.Avatar)
		setIf(&next.PersonalInfo.HeroImage, pi.HeroImage)
		setIf(&next.PersonalInfo.CVFileURL, pi.CVFileURL)
		if c := pi.Contact; c != nil {
			setIf(&next.PersonalInfo.Contact.Email, c.Email)
			setIf(&next.PersonalInfo.Contact.Phone, c.Phone)
			setIf(&next.PersonalInfo.Contact.LinkedIn, c.LinkedIn)
			setIf(&next.PersonalInfo.Contact.GitHub, c.GitHub)
			setIf(&next.PersonalInfo.Contact.Portfolio, c.Portfolio)
		}
	}
	// Generated records always get fresh ids; response ids are ignored.
	if gen.Experience != nil {
		next.Experience = copyList(gen.Experience)
		for i := range next.Experience {
			next.Experience[i].ID = NewID()
		}
	}
	if gen.Education != nil {
		next.Education = copyList(gen.Education)
		for i := range next.Education {
			next.Education[i].ID = NewID()
		}
	}
	if gen.Projects != nil {
		next.Projects = copyList(gen.Projects)
		for i := range next.Projects {
			next.Projects[i].ID = NewID()
		}
	}
	if gen.Skills != nil {
		for _, c := range SkillCategories {
			list := copyList(gen.Skills.Get(c))
			for i := range list {
				list[i].ID = NewID()
				list[i].Level = ClampLevel(list[i].Level)
			}
			next.Skills.Set(c, list)
		}
	}
	if gen.Certifications != nil {
		next.Certifications = copyList(gen.Certifications)
		for i := range next.Certifications {
			next.Certifications[i].ID = NewID()
		}
	}

	next.normalize()
	return next
}

// UnionStrings returns existing followed by every suggestion not already
// present. Matching is by exact value; existing order is kept.
func UnionStrings(existing, suggested []string) []string {
	out := copyList(existing)
	seen := make(map[string]struct{}, len(existing)+len(suggested))
	for _, s := range existing {
		seen[s] = struct{}{}
	}
	for _, s := range suggested {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// UnionSkills appends a new skill for every suggested name not already in
// existing. Existing records, and their ids, are untouched.
func UnionSkills(existing []Skill, suggested []string) []Skill {
	out := copyList(existing)
	seen := make(map[string]struct{}, len(existing)+len(suggested))
	for _, s := range existing {
		seen[s.Name] = struct{}{}
	}
	for _, name := range suggested {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		sk := NewSkill()
		sk.Name = name
		out = append(out, sk)
	}
	return out
}

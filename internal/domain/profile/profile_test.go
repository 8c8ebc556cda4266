package profile

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func assertUniqueIDs(t *testing.T, doc *Document) {
	t.Helper()
	seen := map[string]bool{}
	for _, id := range doc.IDs() {
		require.NotEmpty(t, id)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestDefaultDocumentHasUniqueIDs(t *testing.T) {
	doc := Default()
	assertUniqueIDs(t, doc)
	assert.Equal(t, CurrentSchemaVersion, doc.SchemaVersion)
	assert.NoError(t, doc.Settings.Validate())
}

func TestNewForOwner(t *testing.T) {
	doc := NewForOwner("Jane Doe", "Data Engineer")
	assert.Equal(t, "Jane Doe", doc.PersonalInfo.Name)
	assert.Equal(t, "Data Engineer", doc.PersonalInfo.Title)
	assert.Equal(t, "Welcome to my new profile! I'm a Data Engineer looking for new opportunities.", doc.PersonalInfo.Bio)
	assert.Empty(t, doc.PersonalInfo.Avatar)
	assert.Empty(t, doc.Experience)
	assert.NotNil(t, doc.Experience)
	assert.True(t, doc.Skills.Empty())

	blank := NewForOwner("", "")
	assert.Equal(t, "Your Name", blank.PersonalInfo.Name)
	assert.Equal(t, "Your Title", blank.PersonalInfo.Title)
	assert.Contains(t, blank.PersonalInfo.Bio, "I'm a professional looking")
}

func TestCloneIsDeep(t *testing.T) {
	doc := Default()
	c := doc.Clone()
	c.Projects[0].Tags[0] = "changed"
	c.Experience[0].SkillsUsed = append(c.Experience[0].SkillsUsed, "Go")
	c.Skills.Frontend[0].Name = "Svelte"

	assert.Equal(t, "React", doc.Projects[0].Tags[0])
	assert.Len(t, doc.Experience[0].SkillsUsed, 4)
	assert.Equal(t, "React", doc.Skills.Frontend[0].Name)
}

func TestEnsureIDsFixesMissingAndDuplicates(t *testing.T) {
	doc := NewForOwner("a", "b")
	doc.Projects = []Project{{ID: "p1"}, {ID: "p1"}, {}}
	doc.Hobbies = []Hobby{{ID: "p1"}}

	doc.EnsureIDs()

	assert.Equal(t, "p1", doc.Projects[0].ID)
	assertUniqueIDs(t, doc)
}

func TestWithField(t *testing.T) {
	p, err := NewProject().WithField("tags", " React, ,Go ,")
	require.NoError(t, err)
	assert.Equal(t, []string{"React", "Go"}, p.Tags)

	s, err := NewSkill().WithField("level", "140")
	require.NoError(t, err)
	assert.Equal(t, 100, s.Level)

	_, err = NewSkill().WithField("level", "lots")
	assert.Error(t, err)

	_, err = NewHobby().WithField("id", "x")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestMergeGeneratedKeepsOmittedPersonalFields(t *testing.T) {
	doc := Default()
	doc.PersonalInfo.Avatar = "A"
	doc.PersonalInfo.Contact.Email = "keep@example.com"

	merged := MergeGenerated(doc, &GeneratedProfile{
		PersonalInfo: &GeneratedPersonalInfo{
			Name:    strPtr("Generated Name"),
			Contact: &GeneratedContact{GitHub: strPtr("https://github.com/gen")},
		},
	})

	assert.Equal(t, "A", merged.PersonalInfo.Avatar)
	assert.Equal(t, "Generated Name", merged.PersonalInfo.Name)
	assert.Equal(t, "keep@example.com", merged.PersonalInfo.Contact.Email)
	assert.Equal(t, "https://github.com/gen", merged.PersonalInfo.Contact.GitHub)
	assert.Equal(t, doc.Experience, merged.Experience, "absent keys are untouched")
	assert.Equal(t, "A", doc.PersonalInfo.Avatar)
}

func TestMergeGeneratedReplacesLists(t *testing.T) {
	doc := Default()
	doc.Experience = append(doc.Experience, NewExperience())
	require.Len(t, doc.Experience, 3)
	keptProjectIDs := []string{doc.Projects[0].ID, doc.Projects[1].ID}

	merged := MergeGenerated(doc, &GeneratedProfile{
		Experience: []Experience{{ID: doc.Projects[0].ID, Title: "Staff Engineer", Company: "Acme"}},
		Skills:     &Skills{Backend: []Skill{{Name: "Go", Level: 120}}},
	})

	require.Len(t, merged.Experience, 1)
	assert.Equal(t, "Staff Engineer", merged.Experience[0].Title)
	assert.NotEqual(t, keptProjectIDs[0], merged.Experience[0].ID)
	assert.Equal(t, keptProjectIDs, []string{merged.Projects[0].ID, merged.Projects[1].ID})
	assert.Empty(t, merged.Skills.Frontend)
	require.Len(t, merged.Skills.Backend, 1)
	assert.Equal(t, 100, merged.Skills.Backend[0].Level)
	assertUniqueIDs(t, merged)
}

func TestMergeGeneratedFromJSONDistinguishesAbsentAndEmpty(t *testing.T) {
	var gen GeneratedProfile
	require.NoError(t, json.Unmarshal([]byte(`{"education": []}`), &gen))

	merged := MergeGenerated(Default(), &gen)
	assert.Empty(t, merged.Education)
	assert.Len(t, merged.Projects, 2)
}

func TestUnionStringsIsIdempotent(t *testing.T) {
	existing := []string{"React"}
	once := UnionStrings(existing, []string{"React", "Go"})
	twice := UnionStrings(once, []string{"React", "Go"})

	assert.Equal(t, []string{"React", "Go"}, once)
	assert.Equal(t, once, twice)
	assert.Equal(t, []string{"React"}, existing)
}

func TestUnionSkillsKeepsExistingRecords(t *testing.T) {
	react := Skill{ID: "r", Name: "React", Level: 95}
	out := UnionSkills([]Skill{react}, []string{"React", "Go", "Go"})
	out = UnionSkills(out, []string{"Go", "React"})

	require.Len(t, out, 2)
	assert.Equal(t, react, out[0])
	assert.Equal(t, "Go", out[1].Name)
	assert.Equal(t, DefaultSkillLevel, out[1].Level)
	assert.NotEmpty(t, out[1].ID)
}

func TestDecodeLegacyDocument(t *testing.T) {
	raw := `{
		"personalInfo": {"name": "Old", "contact": {"email": "old@example.com"}},
		"experience": [{"title": "Dev", "company": "X"}],
		"projects": null,
		"settings": {"layout": "tab", "enableAnimations": false,
			"sections": {"about": true, "experience": false}}
	}`

	doc, err := Decode([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, CurrentSchemaVersion, doc.SchemaVersion)
	assert.Equal(t, LayoutTab, doc.Settings.Layout)
	assert.Equal(t, ThemeDark, doc.Settings.Theme, "missing settings take defaults")
	assert.False(t, doc.Settings.Sections.Experience)
	assert.True(t, doc.Settings.Sections.Hobbies)
	assert.Equal(t, ScrollNone, doc.Settings.Animations.ScrollAnimation)
	assert.NotNil(t, doc.Projects)
	require.Len(t, doc.Experience, 1)
	assert.NotEmpty(t, doc.Experience[0].ID)
}

func TestDecodeRejectsFutureVersion(t *testing.T) {
	_, err := Decode([]byte(`{"schemaVersion": 99}`))
	assert.ErrorIs(t, err, ErrUnsupportedVersion)

	_, err = Decode([]byte(`{not json`))
	assert.Error(t, err)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	doc := Default()
	raw, err := EncodeIndent(doc)
	require.NoError(t, err)

	back, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, doc, back)
}

func TestPatch(t *testing.T) {
	doc := Default()

	next, err := Patch(doc, "settings.theme", ThemeLight)
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, next.Settings.Theme)
	assert.Equal(t, ThemeDark, doc.Settings.Theme)

	next, err = Patch(doc, "personalInfo.contact.email", "new@example.com")
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", next.PersonalInfo.Contact.Email)

	next, err = Patch(doc, "projects.1", Project{ID: "other", Name: "Replaced"})
	require.NoError(t, err)
	assert.Equal(t, "Replaced", next.Projects[1].Name)
	assert.Equal(t, doc.Projects[1].ID, next.Projects[1].ID)

	_, err = Patch(doc, "projects.0.id", "x")
	assert.ErrorIs(t, err, ErrImmutableField)

	_, err = Patch(doc, "settings.nope", 1)
	assert.ErrorIs(t, err, ErrInvalidPath)

	_, err = Patch(doc, "projects.9.name", "x")
	assert.ErrorIs(t, err, ErrInvalidPath)

	_, err = Patch(doc, "settings.borderRadius", "round")
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestSkillLevelsAreClampedOnEveryPath(t *testing.T) {
	next, err := Patch(Default(), "skills.frontend.0.level", 500)
	require.NoError(t, err)
	assert.Equal(t, 100, next.Skills.Frontend[0].Level)

	next, err = Patch(Default(), "skills.tools", []Skill{{Name: "Vim", Level: -3}})
	require.NoError(t, err)
	require.Len(t, next.Skills.Tools, 1)
	assert.Equal(t, 0, next.Skills.Tools[0].Level)

	doc, err := Decode([]byte(`{"skills": {"frontend": [{"name": "Go", "level": -40}], "backend": [{"name": "SQL", "level": 140}]}}`))
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Skills.Frontend[0].Level)
	assert.Equal(t, 100, doc.Skills.Backend[0].Level)
}

func TestSectionsSet(t *testing.T) {
	s := AllSections(true)
	require.NoError(t, s.Set(SectionAwards, false))
	assert.False(t, s.Enabled(SectionAwards))
	assert.True(t, s.Enabled(SectionAbout))
	assert.Error(t, s.Set("blog", true))
}

func TestSettingsValidate(t *testing.T) {
	s := DefaultSettings()
	require.NoError(t, s.Validate())

	s.Layout = "grid"
	assert.ErrorIs(t, s.Validate(), ErrInvalidSetting)
}

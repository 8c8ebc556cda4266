package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/dynamic-profile/internal/domain/profile"
)

func keys(sections []SectionView) []profile.SectionKey {
	out := make([]profile.SectionKey, 0, len(sections))
	for _, s := range sections {
		out = append(out, s.Key)
	}
	return out
}

func TestBuild_VisibilityNeedsFlagAndContent(t *testing.T) {
	doc := profile.NewForOwner("Jane", "Engineer")
	doc.Projects = append(doc.Projects, profile.NewProject())
	doc.Settings.Sections.Contact = false

	v := Build(doc)
	assert.Equal(t, []profile.SectionKey{profile.SectionAbout, profile.SectionProjects}, keys(v.Sections))

	doc.Skills.Tools = append(doc.Skills.Tools, profile.NewSkill())
	v = Build(doc)
	assert.Equal(t, []profile.SectionKey{profile.SectionAbout, profile.SectionProjects, profile.SectionSkills}, keys(v.Sections))
}

func TestBuild_SectionOrderIsFixed(t *testing.T) {
	v := Build(profile.Default())
	got := keys(v.Sections)
	require.NotEmpty(t, got)

	pos := map[profile.SectionKey]int{}
	for i, k := range profile.SectionOrder {
		pos[k] = i
	}
	for i := 1; i < len(got); i++ {
		assert.Less(t, pos[got[i-1]], pos[got[i]])
	}
	assert.Equal(t, profile.SectionAbout, got[0])
	assert.Equal(t, profile.SectionContact, got[len(got)-1])
}

func TestBuild_DoesNotMutate(t *testing.T) {
	doc := profile.Default()
	before := doc.Clone()

	v := Build(doc)
	v.Document.PersonalInfo.Name = "changed"
	v.Document.Projects[0].Tags[0] = "changed"

	assert.Equal(t, before, doc)
}

func TestActiveTab_FallsBackToFirstVisible(t *testing.T) {
	doc := profile.Default()
	doc.Settings.Layout = profile.LayoutTab
	doc.Settings.Sections.About = false
	v := Build(doc)

	assert.Equal(t, profile.SectionProjects, v.ActiveTab(profile.SectionProjects))
	assert.Equal(t, profile.SectionExperience, v.ActiveTab(profile.SectionAbout))
	assert.Equal(t, profile.SectionExperience, v.ActiveTab("nope"))

	doc.Settings.Sections = profile.AllSections(false)
	assert.Equal(t, profile.SectionKey(""), Build(doc).ActiveTab(profile.SectionAbout))
}

func TestSlides(t *testing.T) {
	doc := profile.NewForOwner("Jane", "Engineer")
	doc.Settings.Layout = profile.LayoutSlide
	v := Build(doc)

	assert.Equal(t, []string{SlideHero, "about", "contact"}, v.Slides)
	assert.Equal(t, 3, v.SlideCount())
	assert.Equal(t, 0, v.ClampSlide(-4))
	assert.Equal(t, 2, v.ClampSlide(9))
	assert.Equal(t, "contact", v.SlideKey(9))
	assert.Equal(t, SlideHero, v.SlideKey(0))
}

func TestBuild_UnknownLayoutFallsBackToScroll(t *testing.T) {
	doc := profile.Default()
	doc.Settings.Layout = "grid"
	assert.Equal(t, profile.LayoutScroll, Build(doc).Layout)
}

func TestStyle(t *testing.T) {
	doc := profile.Default()
	doc.Settings.Theme = profile.ThemeLight
	doc.Settings.FontFamily = "Open Sans"
	doc.Settings.BoxShadowStrength = profile.ShadowNone
	st := Build(doc).Style

	vars := map[string]string{}
	for _, v := range st.Vars {
		vars[v.Name] = v.Value
	}
	assert.Equal(t, "#f9fafb", vars["--background-color"])
	assert.Equal(t, "#111827", vars["--text-primary-color"])
	assert.Equal(t, "#ffffff", vars["--card-background-color"])
	assert.Equal(t, "none", vars["--box-shadow"])
	assert.Equal(t, "8px", vars["--border-radius"])
	assert.Equal(t, "https://fonts.googleapis.com/css2?family=Open+Sans:wght@300;400;500;700&display=swap", st.FontURL)

	dark := Build(profile.Default()).Style
	assert.Contains(t, dark.RootCSS(), "--background-color: #111827;")
	assert.Contains(t, dark.RootCSS(), "font-family: 'Roboto', sans-serif;")
}

func TestRootCSS_StripsRuleBreakers(t *testing.T) {
	st := Style{Vars: []CSSVar{{"--primary-color", "red;} body{display:none"}}}
	assert.NotContains(t, st.RootCSS(), "}body")
	assert.Equal(t, 1, strings.Count(st.RootCSS(), "}"))
}

func TestHTML_Layouts(t *testing.T) {
	doc := profile.Default()
	doc.Settings.CustomCSS = ".hero { color: red; }"

	var scroll bytes.Buffer
	require.NoError(t, HTML(&scroll, Build(doc), PageState{}))
	out := scroll.String()
	assert.Contains(t, out, "Alex Doe")
	assert.Contains(t, out, `id="experience"`)
	assert.Contains(t, out, ".hero { color: red; }")
	assert.Contains(t, out, "fonts.googleapis.com")

	doc.Settings.Layout = profile.LayoutTab
	var tab bytes.Buffer
	require.NoError(t, HTML(&tab, Build(doc), PageState{Tab: profile.SectionProjects}))
	assert.Contains(t, tab.String(), `id="projects"`)
	assert.NotContains(t, tab.String(), `id="experience"`)

	doc.Settings.Layout = profile.LayoutSlide
	var slide bytes.Buffer
	require.NoError(t, HTML(&slide, Build(doc), PageState{Slide: 0}))
	assert.Contains(t, slide.String(), `id="hero"`)
	assert.Contains(t, slide.String(), `rel="next"`)
	assert.NotContains(t, slide.String(), `rel="prev"`)
}

func TestHTML_EscapesContentAndKeepsDataURIs(t *testing.T) {
	doc := profile.NewForOwner("<script>alert(1)</script>", "Engineer")
	doc.PersonalInfo.Avatar = "data:image/png;base64,aGVsbG8="

	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, Build(doc), PageState{}))
	assert.NotContains(t, buf.String(), "<script>alert(1)</script>")
	assert.Contains(t, buf.String(), `src="data:image/png;base64,aGVsbG8="`)
}

func TestHTML_CustomCSSCannotLeaveStyleElement(t *testing.T) {
	doc := profile.Default()
	doc.Settings.CustomCSS = "body{color:red}</style><script>alert(1)</script><STYLE>"

	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, Build(doc), PageState{}))
	out := buf.String()
	assert.NotContains(t, out, "<script>alert(1)</script>")
	assert.Contains(t, out, `<style id="custom-profile-css">body{color:red}/style>script>alert(1)/script>STYLE></style>`)
}

func TestHTML_RichDescriptions(t *testing.T) {
	doc := profile.Default()
	doc.Education[0].Description = `<p>Thesis on <strong>graphs</strong></p><script>alert(1)</script><img src=x onerror="alert(2)">`

	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, Build(doc), PageState{}))
	out := buf.String()
	assert.Contains(t, out, "<ul><li>Led the development")
	assert.NotContains(t, out, "&lt;ul&gt;")
	assert.Contains(t, out, "<p>Thesis on <strong>graphs</strong></p>")
	assert.NotContains(t, out, "alert(1)")
	assert.NotContains(t, out, "onerror")
}

func TestHTML_SkillBarWidthFollowsLevel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, Build(profile.Default()), PageState{}))
	out := buf.String()
	assert.Contains(t, out, `<span style="width: 95%"></span>`)
	assert.Contains(t, out, `<span style="width: 70%"></span>`)
	assert.NotContains(t, out, "level-")
}

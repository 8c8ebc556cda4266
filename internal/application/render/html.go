package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/khoahotran/dynamic-profile/internal/domain/profile"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = sync.OnceValues(func() (*template.Template, error) {
	return template.New("profile.html").Funcs(template.FuncMap{
		"join":     strings.Join,
		"inc":      func(i int) int { return i + 1 },
		"dec":      func(i int) int { return i - 1 },
		"category": skillCategoryTitle,
		"src":      imageSource,
		"rich":     richText,
	}).ParseFS(templateFS, "templates/*.html")
})

// imageSource lets generated data URI images through the URL filter.
func imageSource(s string) any {
	if strings.HasPrefix(s, "data:image/") {
		return template.URL(s)
	}
	return s
}

var richTextPolicy = sync.OnceValue(bluemonday.UGCPolicy)

// richText keeps the formatting markup of editor descriptions and drops
// everything that could run script.
func richText(s string) template.HTML {
	return template.HTML(richTextPolicy().Sanitize(s))
}

// styleSheet makes custom CSS safe to place inside a style element. A '<'
// is never needed by a rule and is the only way out of the element.
func styleSheet(s string) template.CSS {
	return template.CSS(strings.ReplaceAll(s, "<", ""))
}

func skillCategoryTitle(c profile.SkillCategory) string {
	switch c {
	case profile.SkillFrontend:
		return "Frontend"
	case profile.SkillBackend:
		return "Backend"
	}
	return "Tools"
}

// PageState is the navigation state of one request.
type PageState struct {
	Tab   profile.SectionKey
	Slide int
}

type skillGroup struct {
	Category profile.SkillCategory
	Skills   []profile.Skill
}

type page struct {
	View
	Doc       *profile.Document
	Active    profile.SectionKey
	Slide     int
	SlideKey  string
	RootCSS   template.CSS
	CustomCSS template.CSS
	Skills    []skillGroup
}

type sectionCtx struct {
	SectionView
	*page
}

// Section pairs one section with the page for the section templates.
func (p *page) Section(sec SectionView) sectionCtx {
	return sectionCtx{SectionView: sec, page: p}
}

// HTML writes the public page for v.
func HTML(w io.Writer, v View, state PageState) error {
	tmpl, err := pageTemplate()
	if err != nil {
		return fmt.Errorf("parse profile template: %w", err)
	}

	p := &page{
		View:      v,
		Doc:       v.Document,
		Active:    v.ActiveTab(state.Tab),
		Slide:     v.ClampSlide(state.Slide),
		RootCSS:   template.CSS(v.Style.RootCSS()),
		CustomCSS: styleSheet(v.Style.CustomCSS),
	}
	p.SlideKey = v.SlideKey(p.Slide)
	for _, c := range profile.SkillCategories {
		if list := v.Document.Skills.Get(c); len(list) > 0 {
			p.Skills = append(p.Skills, skillGroup{Category: c, Skills: list})
		}
	}

	if err := tmpl.ExecuteTemplate(w, "profile.html", p); err != nil {
		return fmt.Errorf("render profile page: %w", err)
	}
	return nil
}

// Package render derives the public profile page from a document. Nothing in
// this package mutates the document it is given.
package render

import (
	"github.com/khoahotran/dynamic-profile/internal/domain/profile"
)

// SlideHero is the first slide of the slide layout. It is always shown.
const SlideHero = "hero"

var sectionTitles = map[profile.SectionKey]string{
	profile.SectionAbout:          "About",
	profile.SectionExperience:     "Experience",
	profile.SectionEducation:      "Education",
	profile.SectionProjects:       "Projects",
	profile.SectionSkills:         "Skills",
	profile.SectionCertifications: "Certifications",
	profile.SectionAwards:         "Awards",
	profile.SectionHobbies:        "Hobbies",
	profile.SectionContact:        "Contact",
}

type SectionView struct {
	Key   profile.SectionKey `json:"key"`
	Title string             `json:"title"`
}

// View is everything a page needs to draw one profile.
type View struct {
	Layout     profile.Layout            `json:"layout"`
	ViewMode   profile.ViewMode          `json:"viewMode"`
	Theme      profile.Theme             `json:"theme"`
	Sections   []SectionView             `json:"sections"`
	Slides     []string                  `json:"slides,omitempty"`
	Style      Style                     `json:"style"`
	Animations profile.AnimationSettings `json:"animations"`
	Document   *profile.Document         `json:"document"`
}

// HasContent reports whether a section has anything to show. About and
// contact always do.
func HasContent(doc *profile.Document, key profile.SectionKey) bool {
	switch key {
	case profile.SectionAbout, profile.SectionContact:
		return true
	case profile.SectionExperience:
		return len(doc.Experience) > 0
	case profile.SectionEducation:
		return len(doc.Education) > 0
	case profile.SectionProjects:
		return len(doc.Projects) > 0
	case profile.SectionSkills:
		return !doc.Skills.Empty()
	case profile.SectionCertifications:
		return len(doc.Certifications) > 0
	case profile.SectionAwards:
		return len(doc.Awards) > 0
	case profile.SectionHobbies:
		return len(doc.Hobbies) > 0
	}
	return false
}

// Visible reports whether a section is rendered: it must be enabled in the
// settings and have content.
func Visible(doc *profile.Document, key profile.SectionKey) bool {
	return doc.Settings.Sections.Enabled(key) && HasContent(doc, key)
}

// Build derives the view of doc. It works on a copy.
func Build(doc *profile.Document) View {
	doc = doc.Clone()
	s := doc.Settings

	v := View{
		Layout:     s.Layout,
		ViewMode:   s.ViewMode,
		Theme:      s.Theme,
		Sections:   []SectionView{},
		Style:      buildStyle(s),
		Animations: s.Animations,
		Document:   doc,
	}
	for _, key := range profile.SectionOrder {
		if Visible(doc, key) {
			v.Sections = append(v.Sections, SectionView{Key: key, Title: sectionTitles[key]})
		}
	}
	switch v.Layout {
	case profile.LayoutTab, profile.LayoutSlide:
	default:
		v.Layout = profile.LayoutScroll
	}
	if v.Layout == profile.LayoutSlide {
		v.Slides = append(v.Slides, SlideHero)
		for _, sec := range v.Sections {
			v.Slides = append(v.Slides, string(sec.Key))
		}
	}
	return v
}

// Tabs are the visible sections, in display order.
func (v View) Tabs() []SectionView {
	return v.Sections
}

// ActiveTab returns requested when it is a visible tab, otherwise the first
// visible tab. It returns "" when no tab is visible.
func (v View) ActiveTab(requested profile.SectionKey) profile.SectionKey {
	if len(v.Sections) == 0 {
		return ""
	}
	for _, sec := range v.Sections {
		if sec.Key == requested {
			return requested
		}
	}
	return v.Sections[0].Key
}

// SlideCount counts the hero slide plus one slide per visible section.
func (v View) SlideCount() int {
	return 1 + len(v.Sections)
}

// ClampSlide keeps a slide index inside the current slide deck.
func (v View) ClampSlide(i int) int {
	if i < 0 {
		return 0
	}
	if last := v.SlideCount() - 1; i > last {
		return last
	}
	return i
}

// SlideKey names the slide at a clamped index: SlideHero or a section key.
func (v View) SlideKey(i int) string {
	i = v.ClampSlide(i)
	if i == 0 {
		return SlideHero
	}
	return string(v.Sections[i-1].Key)
}

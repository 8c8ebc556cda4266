package profile

import (
	"errors"
	"fmt"
)

type SkillCategory string

const (
	SkillFrontend SkillCategory = "frontend"
	SkillBackend  SkillCategory = "backend"
	SkillTools    SkillCategory = "tools"
)

var SkillCategories = []SkillCategory{SkillFrontend, SkillBackend, SkillTools}

func (c SkillCategory) Valid() bool {
	switch c {
	case SkillFrontend, SkillBackend, SkillTools:
		return true
	}
	return false
}

type Skills struct {
	Frontend []Skill `json:"frontend"`
	Backend  []Skill `json:"backend"`
	Tools    []Skill `json:"tools"`
}

func (s *Skills) Get(c SkillCategory) []Skill {
	switch c {
	case SkillFrontend:
		return s.Frontend
	case SkillBackend:
		return s.Backend
	case SkillTools:
		return s.Tools
	}
	return nil
}

func (s *Skills) Set(c SkillCategory, list []Skill) {
	switch c {
	case SkillFrontend:
		s.Frontend = list
	case SkillBackend:
		s.Backend = list
	case SkillTools:
		s.Tools = list
	}
}

func (s *Skills) Empty() bool {
	return len(s.Frontend) == 0 && len(s.Backend) == 0 && len(s.Tools) == 0
}

type Layout string

const (
	LayoutScroll Layout = "scroll"
	LayoutTab    Layout = "tab"
	LayoutSlide  Layout = "slide"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

type ShadowStrength string

const (
	ShadowNone ShadowStrength = "none"
	ShadowSM   ShadowStrength = "sm"
	ShadowMD   ShadowStrength = "md"
	ShadowLG   ShadowStrength = "lg"
	ShadowXL   ShadowStrength = "xl"
)

type ViewMode string

const (
	ViewEnhanced ViewMode = "enhanced"
	ViewSimple   ViewMode = "simple"
)

type ScrollAnimation string

const (
	ScrollNone    ScrollAnimation = "none"
	ScrollFadeIn  ScrollAnimation = "fadeIn"
	ScrollSlideUp ScrollAnimation = "slideUp"
)

type HoverEffect string

const (
	HoverNone HoverEffect = "none"
	HoverLift HoverEffect = "lift"
	HoverGrow HoverEffect = "grow"
)

type AIProvider string

const (
	ProviderGemini     AIProvider = "gemini"
	ProviderOpenRouter AIProvider = "openrouter"
	ProviderCustom     AIProvider = "custom"
)

// SectionKey names a renderable section; it doubles as the settings.sections key.
type SectionKey string

const (
	SectionAbout          SectionKey = "about"
	SectionExperience     SectionKey = "experience"
	SectionEducation      SectionKey = "education"
	SectionProjects       SectionKey = "projects"
	SectionSkills         SectionKey = "skills"
	SectionCertifications SectionKey = "certifications"
	SectionAwards         SectionKey = "awards"
	SectionHobbies        SectionKey = "hobbies"
	SectionContact        SectionKey = "contact"
)

// SectionOrder is the fixed display order of sections.
var SectionOrder = []SectionKey{
	SectionAbout, SectionExperience, SectionEducation, SectionProjects, SectionSkills,
	SectionCertifications, SectionAwards, SectionHobbies, SectionContact,
}

type Sections struct {
	About          bool `json:"about"`
	Experience     bool `json:"experience"`
	Education      bool `json:"education"`
	Projects       bool `json:"projects"`
	Skills         bool `json:"skills"`
	Certifications bool `json:"certifications"`
	Awards         bool `json:"awards"`
	Hobbies        bool `json:"hobbies"`
	Contact        bool `json:"contact"`
}

func AllSections(on bool) Sections {
	return Sections{on, on, on, on, on, on, on, on, on}
}

func (s *Sections) flag(key SectionKey) *bool {
	switch key {
	case SectionAbout:
		return &s.About
	case SectionExperience:
		return &s.Experience
	case SectionEducation:
		return &s.Education
	case SectionProjects:
		return &s.Projects
	case SectionSkills:
		return &s.Skills
	case SectionCertifications:
		return &s.Certifications
	case SectionAwards:
		return &s.Awards
	case SectionHobbies:
		return &s.Hobbies
	case SectionContact:
		return &s.Contact
	}
	return nil
}

func (s Sections) Enabled(key SectionKey) bool {
	if f := s.flag(key); f != nil {
		return *f
	}
	return false
}

func (s *Sections) Set(key SectionKey, on bool) error {
	f := s.flag(key)
	if f == nil {
		return fmt.Errorf("%w: unknown section %q", ErrUnknownField, key)
	}
	*f = on
	return nil
}

type AnimationSettings struct {
	ScrollAnimation ScrollAnimation `json:"scrollAnimation"`
	HoverEffect     HoverEffect     `json:"hoverEffect"`
}

type AISettings struct {
	Provider        AIProvider `json:"provider"`
	APIKey          string     `json:"apiKey"`
	OpenRouterModel string     `json:"openRouterModel,omitempty"`
	CustomAPIURL    string     `json:"customApiUrl,omitempty"`
	CustomModel     string     `json:"customModel,omitempty"`
}

type Settings struct {
	Layout             Layout            `json:"layout"`
	Theme              Theme             `json:"theme"`
	PrimaryColor       string            `json:"primaryColor"`
	SecondaryColor     string            `json:"secondaryColor"`
	FontFamily         string            `json:"fontFamily"`
	BorderRadius       int               `json:"borderRadius"`
	BoxShadowStrength  ShadowStrength    `json:"boxShadowStrength"`
	TransitionDuration int               `json:"transitionDuration"`
	CustomCSS          string            `json:"customCss"`
	ViewMode           ViewMode          `json:"viewMode"`
	Sections           Sections          `json:"sections"`
	Animations         AnimationSettings `json:"animations"`
	AI                 AISettings        `json:"ai"`
}

var ErrInvalidSetting = errors.New("invalid setting")

func invalid(name string, v any) error {
	return fmt.Errorf("%w: %s %q", ErrInvalidSetting, name, v)
}

// Validate checks the closed value sets of the settings.
func (s Settings) Validate() error {
	switch s.Layout {
	case LayoutScroll, LayoutTab, LayoutSlide:
	default:
		return invalid("layout", s.Layout)
	}
	switch s.Theme {
	case ThemeLight, ThemeDark:
	default:
		return invalid("theme", s.Theme)
	}
	switch s.BoxShadowStrength {
	case ShadowNone, ShadowSM, ShadowMD, ShadowLG, ShadowXL:
	default:
		return invalid("boxShadowStrength", s.BoxShadowStrength)
	}
	switch s.ViewMode {
	case ViewEnhanced, ViewSimple:
	default:
		return invalid("viewMode", s.ViewMode)
	}
	switch s.Animations.ScrollAnimation {
	case ScrollNone, ScrollFadeIn, ScrollSlideUp:
	default:
		return invalid("scrollAnimation", s.Animations.ScrollAnimation)
	}
	switch s.Animations.HoverEffect {
	case HoverNone, HoverLift, HoverGrow:
	default:
		return invalid("hoverEffect", s.Animations.HoverEffect)
	}
	switch s.AI.Provider {
	case ProviderGemini, ProviderOpenRouter, ProviderCustom:
	default:
		return invalid("ai.provider", s.AI.Provider)
	}
	if s.BorderRadius < 0 {
		return invalid("borderRadius", s.BorderRadius)
	}
	if s.TransitionDuration < 0 {
		return invalid("transitionDuration", s.TransitionDuration)
	}
	return nil
}

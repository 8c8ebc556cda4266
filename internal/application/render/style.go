package render

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/khoahotran/dynamic-profile/internal/domain/profile"
)

const fontsBaseURL = "https://fonts.googleapis.com/css2"

type CSSVar struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Style carries the theme tokens of a page.
type Style struct {
	Vars       []CSSVar `json:"vars"`
	FontFamily string   `json:"fontFamily"`
	FontURL    string   `json:"fontUrl"`
	CustomCSS  string   `json:"customCss"`
}

type palette struct {
	background, textPrimary, textSecondary, card, border string
}

var palettes = map[profile.Theme]palette{
	profile.ThemeDark:  {"#111827", "#f9fafb", "#9ca3af", "#1f2937", "#374151"},
	profile.ThemeLight: {"#f9fafb", "#111827", "#4b5563", "#ffffff", "#e5e7eb"},
}

var shadows = map[profile.ShadowStrength]string{
	profile.ShadowNone: "none",
	profile.ShadowSM:   "0 1px 2px 0 rgb(0 0 0 / 0.05)",
	profile.ShadowMD:   "0 4px 6px -1px rgb(0 0 0 / 0.1), 0 2px 4px -2px rgb(0 0 0 / 0.1)",
	profile.ShadowLG:   "0 10px 15px -3px rgb(0 0 0 / 0.1), 0 4px 6px -4px rgb(0 0 0 / 0.1)",
	profile.ShadowXL:   "0 20px 25px -5px rgb(0 0 0 / 0.1), 0 8px 10px -6px rgb(0 0 0 / 0.1)",
}

// FontURL returns the Google Fonts stylesheet for a font family.
func FontURL(family string) string {
	family = strings.TrimSpace(family)
	if family == "" {
		return ""
	}
	name := strings.ReplaceAll(url.PathEscape(family), "%20", "+")
	return fmt.Sprintf("%s?family=%s:wght@300;400;500;700&display=swap", fontsBaseURL, name)
}

func buildStyle(s profile.Settings) Style {
	p, ok := palettes[s.Theme]
	if !ok {
		p = palettes[profile.ThemeDark]
	}
	shadow, ok := shadows[s.BoxShadowStrength]
	if !ok {
		shadow = shadows[profile.ShadowMD]
	}
	return Style{
		Vars: []CSSVar{
			{"--primary-color", s.PrimaryColor},
			{"--secondary-color", s.SecondaryColor},
			{"--background-color", p.background},
			{"--text-primary-color", p.textPrimary},
			{"--text-secondary-color", p.textSecondary},
			{"--card-background-color", p.card},
			{"--border-color", p.border},
			{"--border-radius", fmt.Sprintf("%dpx", s.BorderRadius)},
			{"--box-shadow", shadow},
			{"--transition-duration", fmt.Sprintf("%dms", s.TransitionDuration)},
		},
		FontFamily: s.FontFamily,
		FontURL:    FontURL(s.FontFamily),
		CustomCSS:  s.CustomCSS,
	}
}

// RootCSS renders the variables as a :root rule.
func (st Style) RootCSS() string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, v := range st.Vars {
		fmt.Fprintf(&b, "  %s: %s;\n", v.Name, cssValue(v.Value))
	}
	if st.FontFamily != "" {
		fmt.Fprintf(&b, "  font-family: '%s', sans-serif;\n", cssValue(st.FontFamily))
	}
	b.WriteString("}\n")
	return b.String()
}

// cssValue drops characters that would end a declaration or rule.
func cssValue(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ';', '{', '}', '<', '>', '\'', '"', '\\':
			return -1
		}
		return r
	}, s)
}

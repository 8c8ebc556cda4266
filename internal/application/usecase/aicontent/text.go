package aicontent

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/khoahotran/dynamic-profile/internal/application/service"
	"github.com/khoahotran/dynamic-profile/internal/domain/profile"
	"github.com/khoahotran/dynamic-profile/pkg/apperror"
)

// GenerateText returns the provider's answer to a free-form prompt. Nothing
// is written to the document.
func (b *Bridge) GenerateText(ctx context.Context, prompt string, n service.Notifier) (string, bool) {
	if strings.TrimSpace(prompt) == "" {
		alert(n, MsgMissingPrompt)
		return "", false
	}
	release, ok := b.begin(ActionText, "", n)
	if !ok {
		return "", false
	}
	defer release()

	out, err := b.text(ctx, ActionText, prompt)
	if err != nil {
		alert(n, failureMessage(err))
		return "", false
	}
	return out, true
}

func bioPrompt(title string) string {
	return fmt.Sprintf("Write a professional and engaging bio for a %q. The bio should be approximately 2-3 sentences long.", title)
}

// GenerateBio writes a short bio for the current title into personalInfo.bio.
func (b *Bridge) GenerateBio(ctx context.Context, n service.Notifier) bool {
	title := strings.TrimSpace(b.store.Current().PersonalInfo.Title)
	if title == "" {
		alert(n, MsgMissingTitle)
		return false
	}
	release, ok := b.begin(ActionBio, "", n)
	if !ok {
		return false
	}
	defer release()

	bio, err := b.text(ctx, ActionBio, bioPrompt(title))
	if err != nil {
		alert(n, MsgBioFailed)
		return false
	}
	return b.commit(func(prev *profile.Document) (*profile.Document, error) {
		prev.PersonalInfo.Bio = bio
		return prev, nil
	}, n)
}

func indexByID[T profile.Record[T]](list []T, id string) int {
	for i, r := range list {
		if r.GetID() == id {
			return i
		}
	}
	return -1
}

// DraftExperienceDescription writes a description for the experience entry
// with the given id.
func (b *Bridge) DraftExperienceDescription(ctx context.Context, id string, n service.Notifier) bool {
	doc := b.store.Current()
	i := indexByID(doc.Experience, id)
	if i < 0 {
		alert(n, MsgRecordRemoved)
		return false
	}
	exp := doc.Experience[i]
	if strings.TrimSpace(exp.Title) == "" {
		alert(n, "Please enter a job title first.")
		return false
	}
	release, ok := b.begin(ActionExperience, id, n)
	if !ok {
		return false
	}
	defer release()

	prompt := fmt.Sprintf("Write a concise description (2-3 sentences) of the responsibilities and achievements of a %q", exp.Title)
	if exp.Company != "" {
		prompt += fmt.Sprintf(" at %q", exp.Company)
	}
	if len(exp.SkillsUsed) > 0 {
		prompt += fmt.Sprintf(", mentioning %s", strings.Join(exp.SkillsUsed, ", "))
	}
	prompt += ". Reply with the description only."

	desc, err := b.text(ctx, ActionExperience, prompt)
	if err != nil {
		alert(n, failureMessage(err))
		return false
	}
	return b.commit(func(prev *profile.Document) (*profile.Document, error) {
		j := indexByID(prev.Experience, id)
		if j < 0 {
			return nil, apperror.NewNotFound("experience", id)
		}
		prev.Experience[j].Description = desc
		return prev, nil
	}, n)
}

// DraftProjectDescription writes a description for the project with the
// given id.
func (b *Bridge) DraftProjectDescription(ctx context.Context, id string, n service.Notifier) bool {
	doc := b.store.Current()
	i := indexByID(doc.Projects, id)
	if i < 0 {
		alert(n, MsgRecordRemoved)
		return false
	}
	p := doc.Projects[i]
	if strings.TrimSpace(p.Name) == "" {
		alert(n, "Please enter a project name first.")
		return false
	}
	release, ok := b.begin(ActionProject, id, n)
	if !ok {
		return false
	}
	defer release()

	prompt := fmt.Sprintf("Write a concise description (2-3 sentences) for a software project named %q", p.Name)
	if len(p.Tags) > 0 {
		prompt += fmt.Sprintf(" built with %s", strings.Join(p.Tags, ", "))
	}
	prompt += ". Reply with the description only."

	desc, err := b.text(ctx, ActionProject, prompt)
	if err != nil {
		alert(n, failureMessage(err))
		return false
	}
	return b.commit(func(prev *profile.Document) (*profile.Document, error) {
		j := indexByID(prev.Projects, id)
		if j < 0 {
			return nil, apperror.NewNotFound("project", id)
		}
		prev.Projects[j].Description = desc
		return prev, nil
	}, n)
}

var listMarker = regexp.MustCompile(`^\s*(?:[-*•]|\d+[.)])\s*`)

// parseSuggestions reads a comma or newline separated reply, dropping list
// markers and empties.
func parseSuggestions(reply string) []string {
	reply = strings.ReplaceAll(reply, "\n", ",")
	var out []string
	for _, item := range profile.SplitList(reply) {
		item = strings.TrimSpace(listMarker.ReplaceAllString(item, ""))
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// SuggestSkills adds suggested skills to one category. Existing skills are
// kept; a suggestion whose name is already present is skipped.
func (b *Bridge) SuggestSkills(ctx context.Context, category profile.SkillCategory, n service.Notifier) bool {
	if !category.Valid() {
		alert(n, fmt.Sprintf("Unknown skill category %q.", category))
		return false
	}
	doc := b.store.Current()
	title := strings.TrimSpace(doc.PersonalInfo.Title)
	if title == "" {
		alert(n, "Please enter your title first to get skill suggestions.")
		return false
	}
	release, ok := b.begin(ActionSkills, string(category), n)
	if !ok {
		return false
	}
	defer release()

	var have []string
	for _, s := range doc.Skills.Get(category) {
		have = append(have, s.Name)
	}
	prompt := fmt.Sprintf("Suggest 5 to 8 %s skills for a %q.", category, title)
	if len(have) > 0 {
		prompt += fmt.Sprintf(" They already list: %s.", strings.Join(have, ", "))
	}
	prompt += " Reply with a comma-separated list of skill names only."

	reply, err := b.text(ctx, ActionSkills, prompt)
	if err != nil {
		alert(n, failureMessage(err))
		return false
	}
	names := parseSuggestions(reply)

	added := false
	ok = b.commit(func(prev *profile.Document) (*profile.Document, error) {
		existing := prev.Skills.Get(category)
		merged := profile.UnionSkills(existing, names)
		added = len(merged) > len(existing)
		prev.Skills.Set(category, merged)
		return prev, nil
	}, n)
	if ok && !added {
		notice(n, MsgNothingSuggested)
	}
	return ok
}

// SuggestTags adds suggested tags to a project without touching the tags it
// already has.
func (b *Bridge) SuggestTags(ctx context.Context, projectID string, n service.Notifier) bool {
	doc := b.store.Current()
	i := indexByID(doc.Projects, projectID)
	if i < 0 {
		alert(n, MsgRecordRemoved)
		return false
	}
	p := doc.Projects[i]
	if strings.TrimSpace(p.Name) == "" && strings.TrimSpace(p.Description) == "" {
		alert(n, "Please enter a project name or description first.")
		return false
	}
	release, ok := b.begin(ActionTags, projectID, n)
	if !ok {
		return false
	}
	defer release()

	prompt := fmt.Sprintf("Suggest 3 to 6 short technology tags for the project %q: %s", p.Name, p.Description)
	prompt += " Reply with a comma-separated list of tags only."

	reply, err := b.text(ctx, ActionTags, prompt)
	if err != nil {
		alert(n, failureMessage(err))
		return false
	}
	tags := parseSuggestions(reply)

	return b.commit(func(prev *profile.Document) (*profile.Document, error) {
		j := indexByID(prev.Projects, projectID)
		if j < 0 {
			return nil, apperror.NewNotFound("project", projectID)
		}
		prev.Projects[j].Tags = profile.UnionStrings(prev.Projects[j].Tags, tags)
		return prev, nil
	}, n)
}

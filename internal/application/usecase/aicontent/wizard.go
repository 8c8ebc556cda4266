package aicontent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/khoahotran/dynamic-profile/internal/application/service"
	"github.com/khoahotran/dynamic-profile/internal/domain/profile"
	"github.com/khoahotran/dynamic-profile/pkg/schema"
)

const wizardPrompt = `Based on the following description, create a professional profile.
Reply with a single JSON object and nothing else. Use these keys:
- "personalInfo": {"name", "title", "bio", "contact": {"email", "phone", "linkedin", "github", "portfolio"}}
- "experience": [{"title", "company", "startDate", "endDate", "description", "skillsUsed": [string]}]
- "education": [{"school", "degree", "fieldOfStudy", "startDate", "endDate", "description"}]
- "projects": [{"name", "description", "repoLink", "demoLink", "tags": [string]}]
- "skills": {"frontend": [{"name", "level"}], "backend": [{"name", "level"}], "tools": [{"name", "level"}]} with level from 0 to 100
- "certifications": [{"name", "issuingOrganization", "date", "credentialUrl"}]
Leave out any key you have no information for.

Description:
%s`

// GenerateWholeProfile drafts a profile from a free-text description and
// merges it into the document. personalInfo merges field by field; every
// list the response contains replaces the existing list.
func (b *Bridge) GenerateWholeProfile(ctx context.Context, description string, n service.Notifier) (*profile.Document, bool) {
	ai := b.store.Current().Settings.AI
	if ai.Provider != profile.ProviderGemini && ai.Provider != "" && strings.TrimSpace(ai.APIKey) == "" {
		alert(n, MsgMissingAPIKey)
		return nil, false
	}
	if strings.TrimSpace(description) == "" {
		alert(n, MsgMissingSelf)
		return nil, false
	}
	release, ok := b.begin(ActionWizard, "", n)
	if !ok {
		return nil, false
	}
	defer release()

	gen, err := b.generateProfile(ctx, description)
	if err != nil {
		alert(n, failureMessage(err))
		return nil, false
	}

	doc, err := b.store.Update(func(prev *profile.Document) (*profile.Document, error) {
		return profile.MergeGenerated(prev, gen), nil
	})
	if err != nil {
		b.logger.Error("Failed to merge generated profile", err)
		alert(n, failureMessage(err))
		return nil, false
	}
	alert(n, MsgProfileDone)
	return doc, true
}

func (b *Bridge) generateProfile(ctx context.Context, description string) (*profile.GeneratedProfile, error) {
	ctx, span := tracer.Start(ctx, "GenerateWholeProfile")
	defer span.End()

	p, release, err := b.provider(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "provider unavailable")
		return nil, err
	}
	defer release()
	span.SetAttributes(attribute.String("ai.provider", p.Name()))

	raw, err := p.GenerateJSON(ctx, fmt.Sprintf(wizardPrompt, description))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generation failed")
		b.logger.Error("AI profile generation failed", err, zap.String("provider", p.Name()))
		return nil, err
	}

	if err := schema.ValidateGenerated(raw); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid response")
		b.logger.Warn("AI returned a profile that does not match the schema",
			zap.String("provider", p.Name()), zap.Error(err))
		var ve *schema.ValidationError
		if errors.As(err, &ve) {
			return nil, fmt.Errorf("the AI response was not a valid profile: %s", strings.Join(ve.Details(), "; "))
		}
		return nil, err
	}

	var gen profile.GeneratedProfile
	if err := json.Unmarshal(raw, &gen); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("the AI response was not a valid profile: %w", err)
	}
	return &gen, nil
}

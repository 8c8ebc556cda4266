package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/dynamic-profile/internal/application/store"
	"github.com/khoahotran/dynamic-profile/internal/domain/profile"
	"github.com/khoahotran/dynamic-profile/pkg/apperror"
	"github.com/khoahotran/dynamic-profile/pkg/logger"
	"github.com/khoahotran/dynamic-profile/pkg/schema"
)

const MsgNameRequired = "Please enter your name."

var tracer = otel.Tracer("profile_usecase")

// DocumentStore is the store surface the profile use cases need.
type DocumentStore interface {
	Current() *profile.Document
	IsNewUser() bool
	Update(fn store.Updater) (*profile.Document, error)
	Replace(doc *profile.Document) (*profile.Document, error)
	CompleteOnboarding(name, title string) (*profile.Document, error)
}

type ProfileUseCase struct {
	store  DocumentStore
	logger logger.Logger
}

func NewProfileUseCase(s DocumentStore, log logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{
		store:  s,
		logger: log,
	}
}

type GetProfileOutput struct {
	Profile *profile.Document
	NewUser bool
}

func (uc *ProfileUseCase) ExecuteGetProfile(ctx context.Context) *GetProfileOutput {
	return &GetProfileOutput{
		Profile: uc.store.Current(),
		NewUser: uc.store.IsNewUser(),
	}
}

type ReplaceProfileInput struct {
	Raw []byte
}

type ReplaceProfileOutput struct {
	Profile *profile.Document
}

// ExecuteReplaceProfile swaps in a whole document. The JSON is checked
// against the document schema and migrated before it is committed.
func (uc *ProfileUseCase) ExecuteReplaceProfile(ctx context.Context, input ReplaceProfileInput) (*ReplaceProfileOutput, error) {
	_, span := tracer.Start(ctx, "ExecuteReplaceProfile")
	defer span.End()

	doc, err := ParseDocument(input.Raw)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	next, err := uc.store.Replace(doc)
	if err != nil {
		uc.logger.Error("Failed to replace profile", err)
		return nil, apperror.NewInternal("replace profile failed", err)
	}
	return &ReplaceProfileOutput{Profile: next}, nil
}

// ParseDocument validates raw JSON against the document schema and decodes
// it, migrating older versions. Every failure is an invalid input error.
func ParseDocument(raw []byte) (*profile.Document, error) {
	if err := schema.ValidateDocument(raw); err != nil {
		var ve *schema.ValidationError
		if errors.As(err, &ve) {
			return nil, apperror.NewInvalidInput(strings.Join(ve.Details(), "; "), err)
		}
		return nil, apperror.NewInternal("document schema unavailable", err)
	}
	doc, err := profile.Decode(raw)
	if err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	if err := doc.Settings.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	return doc, nil
}

type PatchProfileInput struct {
	Path  string
	Value any
}

type PatchProfileOutput struct {
	Profile *profile.Document
}

// ExecutePatchProfile sets one value by dotted path. A patch that leaves the
// settings outside their allowed values is rejected.
func (uc *ProfileUseCase) ExecutePatchProfile(ctx context.Context, input PatchProfileInput) (*PatchProfileOutput, error) {
	_, span := tracer.Start(ctx, "ExecutePatchProfile")
	defer span.End()
	span.SetAttributes(attribute.String("path", input.Path))

	next, err := uc.store.Update(func(prev *profile.Document) (*profile.Document, error) {
		doc, err := profile.Patch(prev, input.Path, input.Value)
		if err != nil {
			return nil, err
		}
		if err := doc.Settings.Validate(); err != nil {
			return nil, err
		}
		return doc, nil
	})
	if err != nil {
		span.RecordError(err)
		switch {
		case errors.Is(err, profile.ErrInvalidPath),
			errors.Is(err, profile.ErrImmutableField),
			errors.Is(err, profile.ErrInvalidSetting):
			return nil, apperror.NewInvalidInput(err.Error(), err)
		}
		uc.logger.Error("Failed to patch profile", err, zap.String("path", input.Path))
		return nil, apperror.NewInternal(fmt.Sprintf("patch %s failed", input.Path), err)
	}
	return &PatchProfileOutput{Profile: next}, nil
}

type OnboardingInput struct {
	Name  string
	Title string
	UseAI bool
}

type OnboardingOutput struct {
	Profile *profile.Document
	// OpenWizard asks the shell to continue with the AI profile wizard.
	OpenWizard bool
}

// ExecuteCompleteOnboarding replaces the demo document with an empty profile
// for the new owner.
func (uc *ProfileUseCase) ExecuteCompleteOnboarding(ctx context.Context, input OnboardingInput) (*OnboardingOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewInvalidInput(MsgNameRequired, nil)
	}
	doc, err := uc.store.CompleteOnboarding(name, strings.TrimSpace(input.Title))
	if err != nil {
		uc.logger.Error("Failed to complete onboarding", err)
		return nil, apperror.NewInternal("complete onboarding failed", err)
	}
	uc.logger.Info("Onboarding completed", zap.Bool("use_ai", input.UseAI))
	return &OnboardingOutput{Profile: doc, OpenWizard: input.UseAI}, nil
}

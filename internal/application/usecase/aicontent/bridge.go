// Package aicontent drafts profile content with the configured AI provider
// and merges the results into the document store.
package aicontent

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/khoahotran/dynamic-profile/internal/application/service"
	"github.com/khoahotran/dynamic-profile/internal/application/store"
	"github.com/khoahotran/dynamic-profile/internal/domain/profile"
	"github.com/khoahotran/dynamic-profile/pkg/apperror"
	"github.com/khoahotran/dynamic-profile/pkg/logger"
)

var tracer = otel.Tracer("aicontent")

const (
	MsgBusy             = "This action is already in progress. Please wait for it to finish."
	MsgMissingAPIKey    = "Please configure your AI API key in the AI Settings tab."
	MsgMissingPrompt    = "Please enter a prompt."
	MsgMissingTitle     = "Please enter your title first to generate a bio."
	MsgBioFailed        = "Sorry, there was an error generating the bio. Please try again."
	MsgMissingSelf      = "Please provide a description of yourself."
	MsgProfileDone      = "Profile generated successfully! Please review the updated sections."
	MsgOverwrite        = "This will overwrite your experience, education, projects, skills and certifications with the generated content."
	MsgNeedNameTitle    = "Please enter your name and title first to generate images."
	MsgImagesDone       = "Avatar and hero image generated successfully!"
	MsgNoImageSupport   = "Image generation is only available with a custom OpenAI-compatible provider."
	MsgRecordRemoved    = "The entry was removed while its content was being generated."
	MsgNothingSuggested = "The AI did not suggest anything new."
)

// Action names one trigger of the admin surface. Two calls of the same
// action and target never run at the same time.
type Action string

const (
	ActionText       Action = "text"
	ActionBio        Action = "bio"
	ActionExperience Action = "experience-description"
	ActionProject    Action = "project-description"
	ActionSkills     Action = "skills"
	ActionTags       Action = "tags"
	ActionWizard     Action = "wizard"
	ActionImages     Action = "images"
)

// DocumentStore is the part of the store the bridge reads and commits to.
type DocumentStore interface {
	Current() *profile.Document
	Update(fn store.Updater) (*profile.Document, error)
}

// Bridge never returns provider errors. Every failure is reported through
// the caller's Notifier and leaves the document unchanged.
type Bridge struct {
	store     DocumentStore
	providers service.ProviderFactory
	uploader  service.Uploader
	folder    string
	logger    logger.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewBridge wires the bridge. uploader may be nil, in which case generated
// images are embedded as data URIs.
func NewBridge(s DocumentStore, providers service.ProviderFactory, uploader service.Uploader, folder string, log logger.Logger) *Bridge {
	return &Bridge{
		store:     s,
		providers: providers,
		uploader:  uploader,
		folder:    folder,
		logger:    log,
		inFlight:  make(map[string]struct{}),
	}
}

// Busy reports whether action is running for target.
func (b *Bridge) Busy(action Action, target string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.inFlight[flightKey(action, target)]
	return ok
}

func flightKey(action Action, target string) string {
	return string(action) + "/" + target
}

// begin claims the action. The returned release must be called when the
// action finishes.
func (b *Bridge) begin(action Action, target string, n service.Notifier) (func(), bool) {
	key := flightKey(action, target)
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.inFlight[key]; ok {
		notice(n, MsgBusy)
		return nil, false
	}
	b.inFlight[key] = struct{}{}
	return func() {
		b.mu.Lock()
		delete(b.inFlight, key)
		b.mu.Unlock()
	}, true
}

// provider builds the provider for the current AI settings. The release
// func closes providers that hold connections.
func (b *Bridge) provider(ctx context.Context) (service.AIProvider, func(), error) {
	settings := b.store.Current().Settings.AI
	p, err := b.providers(ctx, settings)
	if err != nil {
		return nil, nil, err
	}
	release := func() {
		if c, ok := p.(io.Closer); ok {
			if err := c.Close(); err != nil {
				b.logger.Warn("Failed to close AI provider", zap.String("provider", p.Name()), zap.Error(err))
			}
		}
	}
	return p, release, nil
}

// text runs one traced text request.
func (b *Bridge) text(ctx context.Context, action Action, prompt string) (string, error) {
	ctx, span := tracer.Start(ctx, "GenerateText",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("ai.action", string(action))),
	)
	defer span.End()

	p, release, err := b.provider(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "provider unavailable")
		return "", err
	}
	defer release()
	span.SetAttributes(attribute.String("ai.provider", p.Name()))

	out, err := p.GenerateText(ctx, prompt)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generation failed")
		b.logger.Error("AI text generation failed", err, zap.String("action", string(action)), zap.String("provider", p.Name()))
		return "", err
	}
	out = strings.TrimSpace(out)
	if out == "" {
		err := errors.New("the AI returned an empty response")
		span.RecordError(err)
		return "", err
	}
	return out, nil
}

// commit applies fn through the store and reports whether it took effect.
func (b *Bridge) commit(fn store.Updater, n service.Notifier) bool {
	if _, err := b.store.Update(fn); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			notice(n, MsgRecordRemoved)
			return false
		}
		b.logger.Error("Failed to apply generated content", err)
		alert(n, failureMessage(err))
		return false
	}
	return true
}

// failureMessage is the alert shown for a failed generation.
func failureMessage(err error) string {
	return fmt.Sprintf("An error occurred while generating content: %s", reason(err))
}

func reason(err error) string {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.Details != "" {
		return appErr.Details
	}
	return err.Error()
}

func alert(n service.Notifier, msg string) {
	if n != nil {
		n.Alert(msg)
	}
}

func notice(n service.Notifier, msg string) {
	if n != nil {
		n.Notice(msg)
	}
}

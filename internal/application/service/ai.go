package service

import (
	"context"

	"github.com/khoahotran/dynamic-profile/internal/domain/profile"
)

// TextGenerator returns free text for a prompt.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// StructuredGenerator returns a JSON object for a prompt. Providers that
// support response schemas constrain the output to the generated-profile shape.
type StructuredGenerator interface {
	GenerateJSON(ctx context.Context, prompt string) ([]byte, error)
}

// ImageGenerator returns a base64 encoded PNG for a prompt.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// AIProvider is one configured AI back end. Image support is optional and
// discovered with a type assertion on ImageGenerator.
type AIProvider interface {
	TextGenerator
	StructuredGenerator
	Name() string
}

// ProviderFactory builds the provider selected by the current settings.
type ProviderFactory func(ctx context.Context, settings profile.AISettings) (AIProvider, error)

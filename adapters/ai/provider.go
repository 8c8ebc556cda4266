// Package ai builds the AI providers selectable in the profile settings.
package ai

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/khoahotran/dynamic-profile/internal/application/service"
	"github.com/khoahotran/dynamic-profile/internal/config"
	"github.com/khoahotran/dynamic-profile/internal/domain/profile"
	"github.com/khoahotran/dynamic-profile/pkg/apperror"
	"github.com/khoahotran/dynamic-profile/pkg/logger"
)

const (
	DefaultGeminiModel = "gemini-2.5-flash"
	OpenRouterBaseURL  = "https://openrouter.ai/api/v1"
	openRouterReferer  = "https://mydynamicprofile.com"
	openRouterTitle    = "MyDynamicProfile"
)

// Env carries deployment settings that do not live in the profile document.
type Env struct {
	GeminiAPIKey      string
	GeminiModel       string
	OpenRouterBaseURL string
	HTTPClient        *http.Client
}

func EnvFromConfig(cfg config.Config) Env {
	return Env{
		GeminiAPIKey: cfg.AI.GeminiAPIKey,
		GeminiModel:  cfg.AI.GeminiModel,
	}
}

// NewProvider builds the provider selected by settings.Provider.
func NewProvider(ctx context.Context, settings profile.AISettings, env Env, log logger.Logger) (service.AIProvider, error) {
	switch settings.Provider {
	case profile.ProviderGemini, "":
		key := geminiKey(settings, env)
		if key == "" {
			return nil, apperror.NewInvalidInput("Gemini API key is not configured", nil)
		}
		model := env.GeminiModel
		if model == "" {
			model = DefaultGeminiModel
		}
		return newGeminiProvider(ctx, key, model, log)

	case profile.ProviderOpenRouter:
		if settings.APIKey == "" {
			return nil, apperror.NewInvalidInput("OpenRouter API key is not configured", nil)
		}
		model := settings.OpenRouterModel
		if model == "" {
			model = profile.DefaultOpenRouterModel
		}
		base := env.OpenRouterBaseURL
		if base == "" {
			base = OpenRouterBaseURL
		}
		headers := map[string]string{
			"HTTP-Referer": openRouterReferer,
			"X-Title":      openRouterTitle,
		}
		return newOpenAICompatProvider(string(profile.ProviderOpenRouter), settings.APIKey, base, model, headers, env.HTTPClient, log), nil

	case profile.ProviderCustom:
		if strings.TrimSpace(settings.CustomAPIURL) == "" {
			return nil, apperror.NewInvalidInput("Custom API URL is not configured.", nil)
		}
		model := settings.CustomModel
		if model == "" {
			model = profile.DefaultCustomModel
		}
		p := newOpenAICompatProvider(string(profile.ProviderCustom), settings.APIKey, CustomBaseURL(settings.CustomAPIURL), model, nil, env.HTTPClient, log)
		return &customProvider{openAICompatProvider: p}, nil
	}
	return nil, apperror.NewInvalidInput(fmt.Sprintf("unknown AI provider %q", settings.Provider), nil)
}

// Factory binds env so the bridge can rebuild the provider whenever the
// settings change.
func Factory(env Env, log logger.Logger) service.ProviderFactory {
	return func(ctx context.Context, settings profile.AISettings) (service.AIProvider, error) {
		return NewProvider(ctx, settings, env, log)
	}
}

// The deployment key wins over one typed into the settings.
func geminiKey(settings profile.AISettings, env Env) string {
	if env.GeminiAPIKey != "" {
		return env.GeminiAPIKey
	}
	return settings.APIKey
}

// CustomBaseURL accepts either an API base or a full chat completions URL.
func CustomBaseURL(raw string) string {
	u := strings.TrimRight(strings.TrimSpace(raw), "/")
	return strings.TrimSuffix(u, "/chat/completions")
}

// CleanJSONBlock strips markdown code fences around a JSON reply.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

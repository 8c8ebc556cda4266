package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/khoahotran/dynamic-profile/pkg/logger"
)

type geminiProvider struct {
	client *genai.Client
	model  string
	log    logger.Logger
}

func newGeminiProvider(ctx context.Context, apiKey, model string, log logger.Logger) (*geminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	log.Debug("Gemini provider initialized", zap.String("model", model))
	return &geminiProvider{client: client, model: model, log: log}, nil
}

func (p *geminiProvider) Name() string { return "gemini" }

func (p *geminiProvider) GenerateText(ctx context.Context, prompt string) (string, error) {
	model := p.client.GenerativeModel(p.model)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate content failed: %w", err)
	}
	return extractText(resp)
}

// GenerateJSON constrains the reply to the generated-profile schema.
func (p *geminiProvider) GenerateJSON(ctx context.Context, prompt string) ([]byte, error) {
	model := p.client.GenerativeModel(p.model)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = generatedProfileSchema()

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generate content failed: %w", err)
	}
	text, err := extractText(resp)
	if err != nil {
		return nil, err
	}
	return []byte(CleanJSONBlock(text)), nil
}

func (p *geminiProvider) Close() error {
	return p.client.Close()
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return strings.Join(parts, ""), nil
}

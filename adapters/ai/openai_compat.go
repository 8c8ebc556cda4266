package ai

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/khoahotran/dynamic-profile/pkg/logger"
)

// openAICompatProvider talks to any OpenAI-compatible chat completions API.
type openAICompatProvider struct {
	name   string
	client *openai.Client
	model  string
	log    logger.Logger
}

// headerTransport adds fixed headers to every request.
type headerTransport struct {
	base    http.RoundTripper
	headers map[string]string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	for k, v := range t.headers {
		req.Header.Set(k, v)
	}
	return t.base.RoundTrip(req)
}

func newOpenAICompatProvider(name, apiKey, baseURL, model string, headers map[string]string, httpClient *http.Client, log logger.Logger) *openAICompatProvider {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL

	client := httpClient
	if client == nil {
		client = &http.Client{}
	}
	if len(headers) > 0 {
		base := client.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		withHeaders := *client
		withHeaders.Transport = &headerTransport{base: base, headers: headers}
		client = &withHeaders
	}
	cfg.HTTPClient = client

	log.Debug("OpenAI-compatible provider initialized", zap.String("provider", name), zap.String("base_url", baseURL), zap.String("model", model))
	return &openAICompatProvider{
		name:   name,
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		log:    log,
	}
}

func (p *openAICompatProvider) Name() string { return p.name }

func (p *openAICompatProvider) chat(ctx context.Context, prompt string, format *openai.ChatCompletionResponseFormat) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		ResponseFormat: format,
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%s chat completion request failed: %w", p.name, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%s returned no chat choices", p.name)
	}
	return resp.Choices[0].Message.Content, nil
}

func (p *openAICompatProvider) GenerateText(ctx context.Context, prompt string) (string, error) {
	return p.chat(ctx, prompt, nil)
}

func (p *openAICompatProvider) GenerateJSON(ctx context.Context, prompt string) ([]byte, error) {
	text, err := p.chat(ctx, prompt, &openai.ChatCompletionResponseFormat{
		Type: openai.ChatCompletionResponseFormatTypeJSONObject,
	})
	if err != nil {
		return nil, err
	}
	return []byte(CleanJSONBlock(text)), nil
}

// customProvider is the only provider that can also generate images.
type customProvider struct {
	*openAICompatProvider
}

func (p *customProvider) GenerateImage(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         prompt,
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return "", fmt.Errorf("%s image request failed: %w", p.name, err)
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return "", fmt.Errorf("%s returned no image data", p.name)
	}
	return resp.Data[0].B64JSON, nil
}

// internal/ai/gemini.go
package ai

import (
	"context"
	"fmt"
	"time"

	"unihub-api/internal/common/errors"
	"unihub-api/internal/common/logger"

	"google.golang.org/genai"
)

// GeminiProvider calls the Gemini API through the official client. The client
// is constructed once and injected; there is no lazily-built module singleton.
type GeminiProvider struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  logger.Logger
}

// GeminiProviderOptions configures a GeminiProvider. The API key arrives from
// configuration only.
type GeminiProviderOptions struct {
	APIKey  string
	Model   string
	Timeout time.Duration
	Logger  logger.Logger
}

func NewGeminiProvider(ctx context.Context, opts GeminiProviderOptions) (*GeminiProvider, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: opts.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiProvider{
		client:  client,
		model:   opts.Model,
		timeout: opts.Timeout,
		logger:  opts.Logger.WithFields(map[string]interface{}{"provider": "gemini"}),
	}, nil
}

func (p *GeminiProvider) Name() string {
	return "gemini"
}

// Generate makes a single generation attempt against the cloud endpoint.
func (p *GeminiProvider) Generate(ctx context.Context, req *Request) (string, error) {
	genCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	result, err := p.client.Models.GenerateContent(genCtx,
		p.model,
		genai.Text(buildPrompt(req)),
		nil,
	)
	if err != nil {
		if genCtx.Err() == context.DeadlineExceeded {
			return "", errors.NewProviderTimeoutError(p.Name())
		}
		return "", errors.NewProviderUnavailableError(p.Name(), err)
	}

	text := result.Text()
	if text == "" {
		return "", errors.NewEmptyCompletionError(p.Name())
	}
	return text, nil
}

// internal/ai/local.go
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"unihub-api/internal/common/errors"
	"unihub-api/internal/common/logger"
)

// LocalProvider talks to an Ollama-compatible local inference endpoint. A
// short availability probe runs before the (much slower) generation call so an
// absent local model fails the chain over quickly.
type LocalProvider struct {
	baseURL         string
	model           string
	healthTimeout   time.Duration
	generateTimeout time.Duration
	client          *http.Client
	logger          logger.Logger
}

// LocalProviderOptions configures a LocalProvider.
type LocalProviderOptions struct {
	BaseURL         string
	Model           string
	HealthTimeout   time.Duration
	GenerateTimeout time.Duration
	Logger          logger.Logger
}

func NewLocalProvider(opts LocalProviderOptions) *LocalProvider {
	return &LocalProvider{
		baseURL:         opts.BaseURL,
		model:           opts.Model,
		healthTimeout:   opts.HealthTimeout,
		generateTimeout: opts.GenerateTimeout,
		// Rely on per-call contexts, not a client-wide timeout
		client: &http.Client{},
		logger: opts.Logger.WithFields(map[string]interface{}{"provider": "local"}),
	}
}

func (p *LocalProvider) Name() string {
	return "local"
}

// Generate probes availability, then runs one generation attempt.
func (p *LocalProvider) Generate(ctx context.Context, req *Request) (string, error) {
	if err := p.probe(ctx); err != nil {
		return "", err
	}

	genCtx, cancel := context.WithTimeout(ctx, p.generateTimeout)
	defer cancel()

	requestBody := map[string]interface{}{
		"model":  p.model,
		"prompt": buildPrompt(req),
		"stream": false,
	}
	body, _ := json.Marshal(requestBody)

	httpReq, err := http.NewRequestWithContext(genCtx, http.MethodPost, p.baseURL+"/api/generate", bytes.NewBuffer(body))
	if err != nil {
		return "", errors.NewProviderUnavailableError(p.Name(), err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		if genCtx.Err() == context.DeadlineExceeded {
			return "", errors.NewProviderTimeoutError(p.Name())
		}
		return "", errors.NewProviderUnavailableError(p.Name(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.NewProviderUnavailableError(p.Name(), fmt.Errorf("status %d", resp.StatusCode))
	}

	var apiResponse struct {
		Response string `json:"response"`
		Done     bool   `json:"done"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		return "", errors.NewProviderUnavailableError(p.Name(), fmt.Errorf("decode error: %w", err))
	}

	return apiResponse.Response, nil
}

// probe checks the endpoint is reachable within the short health timeout.
func (p *LocalProvider) probe(ctx context.Context) error {
	probeCtx, cancel := context.WithTimeout(ctx, p.healthTimeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(probeCtx, http.MethodGet, p.baseURL+"/api/tags", nil)
	if err != nil {
		return errors.NewProviderUnavailableError(p.Name(), err)
	}

	resp, err := p.client.Do(httpReq)
	if err != nil {
		if probeCtx.Err() == context.DeadlineExceeded {
			return errors.NewProviderTimeoutError(p.Name())
		}
		return errors.NewProviderUnavailableError(p.Name(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.NewProviderUnavailableError(p.Name(), fmt.Errorf("health status %d", resp.StatusCode))
	}
	return nil
}

// internal/ai/chain.go
package ai

import (
	"context"
	"strings"
	"unicode/utf8"

	"unihub-api/internal/common/logger"
	"unihub-api/internal/common/metrics"
)

// Chain tries providers in order and falls back to the canned responder when
// every attempt fails or returns trivial output. Attempts are sequential;
// provider errors are logged and absorbed, never surfaced to the caller.
type Chain struct {
	providers []Provider
	fallback  *FallbackResponder
	minLength int
	logger    logger.Logger
}

// ChainOptions configures a Chain. MinResponseLength is the non-trivial-output
// threshold in runes.
type ChainOptions struct {
	Providers         []Provider
	MinResponseLength int
	Logger            logger.Logger
}

func NewChain(opts ChainOptions) *Chain {
	minLength := opts.MinResponseLength
	if minLength <= 0 {
		minLength = 10
	}
	return &Chain{
		providers: opts.Providers,
		fallback:  NewFallbackResponder(),
		minLength: minLength,
		logger:    opts.Logger.WithFields(map[string]interface{}{"component": "ai-chain"}),
	}
}

// Generate always returns a result. The worst case is the deterministic
// fallback text, never an error.
func (c *Chain) Generate(ctx context.Context, req *Request) *Result {
	for _, provider := range c.providers {
		text, err := provider.Generate(ctx, req)
		if err != nil {
			metrics.ProviderAttemptsTotal.WithLabelValues(provider.Name(), "error").Inc()
			c.logger.Warn("provider attempt failed", map[string]interface{}{
				"provider": provider.Name(),
				"error":    err.Error(),
			})
			continue
		}

		if utf8.RuneCountInString(strings.TrimSpace(text)) < c.minLength {
			metrics.ProviderAttemptsTotal.WithLabelValues(provider.Name(), "trivial").Inc()
			c.logger.Warn("provider returned trivial output", map[string]interface{}{
				"provider": provider.Name(),
				"length":   len(text),
			})
			continue
		}

		metrics.ProviderAttemptsTotal.WithLabelValues(provider.Name(), "success").Inc()
		return &Result{Text: text, Provider: provider.Name()}
	}

	metrics.ProviderFallbacksTotal.Inc()
	text, _ := c.fallback.Generate(ctx, req)
	return &Result{Text: text, Provider: c.fallback.Name()}
}

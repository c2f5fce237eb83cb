// internal/ai/chain_test.go
package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"unihub-api/internal/common/logger"
)

// stubProvider returns a fixed text or error, counting calls.
type stubProvider struct {
	name  string
	text  string
	err   error
	calls int
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Generate(_ context.Context, _ *Request) (string, error) {
	s.calls++
	return s.text, s.err
}

func newTestChain(providers ...Provider) *Chain {
	return NewChain(ChainOptions{
		Providers:         providers,
		MinResponseLength: 10,
		Logger:            logger.NewNoOpLogger(),
	})
}

func TestChain_FirstProviderWins(t *testing.T) {
	first := &stubProvider{name: "first", text: "a perfectly adequate answer"}
	second := &stubProvider{name: "second", text: "should never be reached"}

	result := newTestChain(first, second).Generate(context.Background(), &Request{Prompt: "hi"})

	assert.Equal(t, "a perfectly adequate answer", result.Text)
	assert.Equal(t, "first", result.Provider)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls)
}

func TestChain_AdvancesOnError(t *testing.T) {
	first := &stubProvider{name: "first", err: errors.New("connection refused")}
	second := &stubProvider{name: "second", text: "the second provider answers"}

	result := newTestChain(first, second).Generate(context.Background(), &Request{Prompt: "hi"})

	assert.Equal(t, "second", result.Provider)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
}

func TestChain_AdvancesOnTrivialOutput(t *testing.T) {
	first := &stubProvider{name: "first", text: "ok"}
	second := &stubProvider{name: "second", text: "a real answer with substance"}

	result := newTestChain(first, second).Generate(context.Background(), &Request{Prompt: "hi"})

	assert.Equal(t, "second", result.Provider)
}

func TestChain_WhitespaceOnlyOutputIsTrivial(t *testing.T) {
	first := &stubProvider{name: "first", text: "     \n\t      "}
	second := &stubProvider{name: "second", text: "a real answer with substance"}

	result := newTestChain(first, second).Generate(context.Background(), &Request{Prompt: "hi"})

	assert.Equal(t, "second", result.Provider)
}

func TestChain_AllProvidersFailFallsBack(t *testing.T) {
	first := &stubProvider{name: "first", err: errors.New("unavailable")}
	second := &stubProvider{name: "second", err: errors.New("quota exceeded")}

	chain := newTestChain(first, second)
	req := &Request{Prompt: "what are my admission chances?"}

	result := chain.Generate(context.Background(), req)

	assert.Equal(t, "fallback", result.Provider)

	expected, _ := NewFallbackResponder().Generate(context.Background(), req)
	assert.Equal(t, expected, result.Text)
}

func TestChain_FallbackDeterministicAcrossRuns(t *testing.T) {
	failing := &stubProvider{name: "failing", err: errors.New("down")}
	chain := newTestChain(failing)
	req := &Request{Prompt: "how much does tuition cost?"}

	first := chain.Generate(context.Background(), req)
	second := chain.Generate(context.Background(), req)

	assert.Equal(t, first.Text, second.Text)
	assert.Equal(t, "fallback", first.Provider)
}

func TestChain_NoProvidersStillAnswers(t *testing.T) {
	chain := newTestChain()

	result := chain.Generate(context.Background(), &Request{Prompt: "hello"})

	assert.Equal(t, "fallback", result.Provider)
	assert.NotEmpty(t, result.Text)
}

// internal/ai/models.go
package ai

import "context"

// Request carries the user prompt plus optional structured context (resolved
// catalog records, factor scores) the provider may ground its answer on.
type Request struct {
	Prompt  string                 `json:"prompt"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Result is what the chain hands back to the caller. Provider names which
// backend produced the text.
type Result struct {
	Text     string `json:"text"`
	Provider string `json:"provider"`
}

// Provider is a single text-generation backend. Generate makes exactly one
// attempt; retry policy, if any, belongs to the caller.
type Provider interface {
	Name() string
	Generate(ctx context.Context, req *Request) (string, error)
}

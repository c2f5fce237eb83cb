// internal/ai/prompt.go
package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

const systemPreamble = "You are a helpful university admissions advisor. " +
	"Answer the student's question based ONLY on the provided data. " +
	"Be concise and practical."

// buildPrompt flattens the request into a single prompt string for providers
// that take no separate system/context channels.
func buildPrompt(req *Request) string {
	var parts []string

	parts = append(parts, systemPreamble)
	parts = append(parts, fmt.Sprintf("\nStudent Question: %s", req.Prompt))

	if len(req.Context) > 0 {
		contextJSON, _ := json.MarshalIndent(req.Context, "", "  ")
		parts = append(parts, "\nReference Data:")
		parts = append(parts, string(contextJSON))
	}

	return strings.Join(parts, "\n")
}

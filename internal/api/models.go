// internal/api/models.go
package api

import (
	"unihub-api/internal/common/errors"
	"unihub-api/internal/models"
	"unihub-api/internal/scoring"
)

// AdmissionChanceRequest targets one program/university pair. The portfolio is
// taken inline when present, otherwise loaded from the store by userId.
type AdmissionChanceRequest struct {
	UserID       string            `json:"userId,omitempty"`
	Portfolio    *models.Portfolio `json:"portfolio,omitempty"`
	UniversityID string            `json:"universityId"`
	ProgramID    string            `json:"programId"`
}

// MatchRequest wraps the preference set for university matching.
type MatchRequest struct {
	Preferences scoring.Preferences `json:"preferences"`
}

// MatchResponse returns ranked matches, best first, at most five.
type MatchResponse struct {
	Matches []scoring.MatchResult `json:"matches"`
}

// ChatRequest is a free-text question with optional structured context.
type ChatRequest struct {
	Message string                 `json:"message"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// ChatResponse always carries a reply; Provider names the backend that
// produced it, "fallback" in the worst case.
type ChatResponse struct {
	Reply    string `json:"reply"`
	Provider string `json:"provider"`
}

// ErrorResponse is the structured error body for non-2xx responses.
type ErrorResponse struct {
	Error *errors.StandardError `json:"error"`
}

// internal/api/handlers.go
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"unihub-api/internal/ai"
	"unihub-api/internal/catalog"
	"unihub-api/internal/common/errors"
	"unihub-api/internal/common/logger"
	"unihub-api/internal/common/metrics"
	"unihub-api/internal/models"
	"unihub-api/internal/portfolio"
	"unihub-api/internal/scoring"
)

// Generator abstracts the AI chain so handlers can be tested with a stub.
type Generator interface {
	Generate(ctx context.Context, req *ai.Request) *ai.Result
}

// Handlers bundles the HTTP handlers with their dependencies.
type Handlers struct {
	catalog    catalog.Provider
	portfolios portfolio.Store
	generator  Generator
	logger     logger.Logger
}

func NewHandlers(cat catalog.Provider, store portfolio.Store, gen Generator, log logger.Logger) *Handlers {
	return &Handlers{
		catalog:    cat,
		portfolios: store,
		generator:  gen,
		logger:     log.WithFields(map[string]interface{}{"component": "api"}),
	}
}

// AdmissionChance handles POST /api/v1/admission-chance.
func (h *Handlers) AdmissionChance(w http.ResponseWriter, r *http.Request) {
	var req AdmissionChanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, errors.NewInvalidRequestError("malformed JSON body"))
		return
	}
	if req.UniversityID == "" || req.ProgramID == "" {
		h.writeError(w, errors.NewInvalidRequestError("universityId and programId are required"))
		return
	}
	if req.Portfolio == nil && req.UserID == "" {
		h.writeError(w, errors.NewInvalidRequestError("either portfolio or userId is required"))
		return
	}
	if req.Portfolio != nil {
		if err := validatePortfolio(req.Portfolio); err != nil {
			h.writeError(w, err)
			return
		}
	}

	university, err := h.catalog.FindUniversity(req.UniversityID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	program, err := h.catalog.FindProgram(req.ProgramID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	p := req.Portfolio
	if p == nil {
		loaded, err := h.portfolios.Load(r.Context(), req.UserID)
		switch {
		case err == nil:
			p = loaded
		case portfolio.IsNotFound(err):
			// A user who never saved a profile scores like an empty one.
			p = models.NewPortfolio()
		default:
			h.writeError(w, err)
			return
		}
	}

	result := scoring.ComputeAdmissionChance(p, program, university)
	metrics.ScoreComputationsTotal.WithLabelValues("admission").Inc()

	h.writeJSON(w, http.StatusOK, result)
}

// Match handles POST /api/v1/match.
func (h *Handlers) Match(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, errors.NewInvalidRequestError("malformed JSON body"))
		return
	}

	results := scoring.MatchUniversities(req.Preferences, h.catalog.Universities())
	metrics.ScoreComputationsTotal.WithLabelValues("match").Inc()

	h.writeJSON(w, http.StatusOK, MatchResponse{Matches: results})
}

// Chat handles POST /api/v1/chat. It always answers 200; the provider chain
// absorbs every backend failure.
func (h *Handlers) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, errors.NewInvalidRequestError("malformed JSON body"))
		return
	}
	if req.Message == "" {
		h.writeError(w, errors.NewInvalidRequestError("message is required"))
		return
	}

	result := h.generator.Generate(r.Context(), &ai.Request{
		Prompt:  req.Message,
		Context: req.Context,
	})

	h.writeJSON(w, http.StatusOK, ChatResponse{
		Reply:    result.Text,
		Provider: result.Provider,
	})
}

// Universities handles GET /api/v1/universities.
func (h *Handlers) Universities(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, h.catalog.Universities())
}

// University handles GET /api/v1/universities/{id}.
func (h *Handlers) University(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	u, err := h.catalog.FindUniversity(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, u)
}

// Program handles GET /api/v1/programs/{id}.
func (h *Handlers) Program(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	p, err := h.catalog.FindProgram(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, p)
}

// GetPortfolio handles GET /api/v1/portfolio/{userId}.
func (h *Handlers) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	p, err := h.portfolios.Load(r.Context(), userID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, p)
}

// SavePortfolio handles PUT /api/v1/portfolio/{userId}. The body is a whole
// snapshot; partial updates are a client concern.
func (h *Handlers) SavePortfolio(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var p models.Portfolio
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		h.writeError(w, errors.NewInvalidRequestError("malformed JSON body"))
		return
	}
	if err := validatePortfolio(&p); err != nil {
		h.writeError(w, err)
		return
	}

	if err := h.portfolios.Save(r.Context(), userID, &p); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, &p)
}

// DeletePortfolio handles DELETE /api/v1/portfolio/{userId}.
func (h *Handlers) DeletePortfolio(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if err := h.portfolios.Clear(r.Context(), userID); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Health handles GET /health.
func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// Ready handles GET /ready.
func (h *Handlers) Ready(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// NotFound is the router's catch-all.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusNotFound, map[string]string{
		"error": "not found",
		"path":  r.URL.Path,
	})
}

func validatePortfolio(p *models.Portfolio) error {
	if p.ENTScore != nil && (*p.ENTScore < 0 || *p.ENTScore > 140) {
		return errors.NewInvalidRequestError("entScore must be within [0,140]")
	}
	if p.GPA != nil && (*p.GPA < 0 || *p.GPA > 5) {
		return errors.NewInvalidRequestError("gpa must be within [0,5]")
	}
	return nil
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (h *Handlers) writeError(w http.ResponseWriter, err error) {
	se := errors.AsStandardError(err)
	h.writeJSON(w, se.HTTPStatus(), ErrorResponse{Error: se})
}

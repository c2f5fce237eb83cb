// internal/api/handlers_test.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unihub-api/internal/ai"
	"unihub-api/internal/catalog"
	"unihub-api/internal/common/errors"
	"unihub-api/internal/common/logger"
	"unihub-api/internal/models"
	"unihub-api/internal/portfolio"
	"unihub-api/internal/scoring"
)

// stubCatalog serves a fixed record set without touching the filesystem.
type stubCatalog struct {
	universities []catalog.UniversityRecord
	programs     map[string]catalog.ProgramRecord
}

func (c *stubCatalog) FindUniversity(id string) (*catalog.UniversityRecord, error) {
	for _, u := range c.universities {
		if u.ID == id {
			out := u
			return &out, nil
		}
	}
	return nil, errors.NewUniversityNotFoundError(id)
}

func (c *stubCatalog) FindProgram(id string) (*catalog.ProgramRecord, error) {
	p, ok := c.programs[id]
	if !ok {
		return nil, errors.NewProgramNotFoundError(id)
	}
	return &p, nil
}

func (c *stubCatalog) Universities() []catalog.UniversityRecord {
	out := make([]catalog.UniversityRecord, len(c.universities))
	copy(out, c.universities)
	return out
}

// stubGenerator returns a fixed chat reply.
type stubGenerator struct {
	text     string
	provider string
}

func (g *stubGenerator) Generate(_ context.Context, _ *ai.Request) *ai.Result {
	return &ai.Result{Text: g.text, Provider: g.provider}
}

func testCatalog() *stubCatalog {
	return &stubCatalog{
		universities: []catalog.UniversityRecord{
			{
				ID: "kbtu", Name: "KBTU", City: "Almaty", Rating: 4.9,
				BudgetTier: "high", MinENT: 100, Tags: []string{"it", "english"},
			},
			{
				ID: "kaznu", Name: "KazNU", City: "Almaty", Rating: 4.7,
				BudgetTier: "medium", MinENT: 85, Tags: []string{"law", "science"},
			},
		},
		programs: map[string]catalog.ProgramRecord{
			"kbtu-cs": {
				ID: "kbtu-cs", UniversityID: "kbtu", Name: "Computer Science",
				Requirements: catalog.ProgramRequirement{MinENT: 110, RequiredSubjects: []string{"math"}},
			},
		},
	}
}

func newTestRouter(t *testing.T, store portfolio.Store) *mux.Router {
	t.Helper()
	handlers := NewHandlers(testCatalog(), store, &stubGenerator{
		text:     "canned advisor reply",
		provider: "stub",
	}, logger.NewTestLogger(t))

	router := mux.NewRouter()
	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/admission-chance", handlers.AdmissionChance).Methods(http.MethodPost)
	api.HandleFunc("/match", handlers.Match).Methods(http.MethodPost)
	api.HandleFunc("/chat", handlers.Chat).Methods(http.MethodPost)
	api.HandleFunc("/universities", handlers.Universities).Methods(http.MethodGet)
	api.HandleFunc("/universities/{id}", handlers.University).Methods(http.MethodGet)
	api.HandleFunc("/programs/{id}", handlers.Program).Methods(http.MethodGet)
	api.HandleFunc("/portfolio/{userId}", handlers.GetPortfolio).Methods(http.MethodGet)
	api.HandleFunc("/portfolio/{userId}", handlers.SavePortfolio).Methods(http.MethodPut)
	api.HandleFunc("/portfolio/{userId}", handlers.DeletePortfolio).Methods(http.MethodDelete)
	router.NotFoundHandler = http.HandlerFunc(handlers.NotFound)
	return router
}

func doJSON(t *testing.T, router *mux.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(raw)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *errors.StandardError {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return resp.Error
}

func TestAdmissionChance_InlinePortfolio(t *testing.T) {
	router := newTestRouter(t, portfolio.NewMemoryStore())

	ent := 120
	gpa := 4.5
	rec := doJSON(t, router, http.MethodPost, "/api/v1/admission-chance", AdmissionChanceRequest{
		UniversityID: "kbtu",
		ProgramID:    "kbtu-cs",
		Portfolio: &models.Portfolio{
			ENTScore:     &ent,
			GPA:          &gpa,
			Achievements: []string{"a", "b", "c"},
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var result scoring.AdmissionChanceResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "kbtu", result.UniversityID)
	assert.Equal(t, "kbtu-cs", result.ProgramID)
	assert.GreaterOrEqual(t, result.Chance, 0)
	assert.LessOrEqual(t, result.Chance, 100)
	assert.NotEmpty(t, result.Recommendations)
}

func TestAdmissionChance_StoredPortfolio(t *testing.T) {
	store := portfolio.NewMemoryStore()
	ent := 130
	require.NoError(t, store.Save(context.Background(), "user-1", &models.Portfolio{ENTScore: &ent}))
	router := newTestRouter(t, store)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/admission-chance", AdmissionChanceRequest{
		UserID:       "user-1",
		UniversityID: "kbtu",
		ProgramID:    "kbtu-cs",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var result scoring.AdmissionChanceResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, float64(100), result.Factors.ENTScore)
}

func TestAdmissionChance_UnknownUserScoresAsEmpty(t *testing.T) {
	router := newTestRouter(t, portfolio.NewMemoryStore())

	rec := doJSON(t, router, http.MethodPost, "/api/v1/admission-chance", AdmissionChanceRequest{
		UserID:       "never-saved",
		UniversityID: "kbtu",
		ProgramID:    "kbtu-cs",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var result scoring.AdmissionChanceResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 0, result.Chance)
}

func TestAdmissionChance_ValidationErrors(t *testing.T) {
	router := newTestRouter(t, portfolio.NewMemoryStore())

	tests := []struct {
		name string
		req  AdmissionChanceRequest
	}{
		{"missing ids", AdmissionChanceRequest{UserID: "user-1"}},
		{"missing portfolio and userId", AdmissionChanceRequest{UniversityID: "kbtu", ProgramID: "kbtu-cs"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPost, "/api/v1/admission-chance", tt.req)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, errors.ErrCodeInvalidRequest, decodeError(t, rec).Code)
		})
	}
}

func TestAdmissionChance_UnknownUniversity(t *testing.T) {
	router := newTestRouter(t, portfolio.NewMemoryStore())

	rec := doJSON(t, router, http.MethodPost, "/api/v1/admission-chance", AdmissionChanceRequest{
		UserID:       "user-1",
		UniversityID: "ghost",
		ProgramID:    "kbtu-cs",
	})

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, errors.ErrCodeUniversityNotFound, decodeError(t, rec).Code)
}

func TestAdmissionChance_UnknownProgram(t *testing.T) {
	router := newTestRouter(t, portfolio.NewMemoryStore())

	rec := doJSON(t, router, http.MethodPost, "/api/v1/admission-chance", AdmissionChanceRequest{
		UserID:       "user-1",
		UniversityID: "kbtu",
		ProgramID:    "ghost",
	})

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, errors.ErrCodeProgramNotFound, decodeError(t, rec).Code)
}

func TestMatch_RanksCatalog(t *testing.T) {
	router := newTestRouter(t, portfolio.NewMemoryStore())

	rec := doJSON(t, router, http.MethodPost, "/api/v1/match", MatchRequest{
		Preferences: scoring.Preferences{
			Interests: []string{"it"},
			City:      "any",
			Budget:    "any",
			ENTScore:  120,
			Language:  "any",
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp MatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Matches, 2)
	assert.Equal(t, "kbtu", resp.Matches[0].UniversityID)
	assert.Greater(t, resp.Matches[0].MatchScore, resp.Matches[1].MatchScore)
}

func TestChat_AlwaysAnswers(t *testing.T) {
	router := newTestRouter(t, portfolio.NewMemoryStore())

	rec := doJSON(t, router, http.MethodPost, "/api/v1/chat", ChatRequest{
		Message: "what are my chances?",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "canned advisor reply", resp.Reply)
	assert.Equal(t, "stub", resp.Provider)
}

func TestChat_EmptyMessageRejected(t *testing.T) {
	router := newTestRouter(t, portfolio.NewMemoryStore())

	rec := doJSON(t, router, http.MethodPost, "/api/v1/chat", ChatRequest{})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, errors.ErrCodeInvalidRequest, decodeError(t, rec).Code)
}

func TestUniversities_ListAndLookup(t *testing.T) {
	router := newTestRouter(t, portfolio.NewMemoryStore())

	rec := doJSON(t, router, http.MethodGet, "/api/v1/universities", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var all []catalog.UniversityRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.Len(t, all, 2)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/universities/kbtu", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var u catalog.UniversityRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &u))
	assert.Equal(t, "KBTU", u.Name)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/universities/ghost", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProgram_Lookup(t *testing.T) {
	router := newTestRouter(t, portfolio.NewMemoryStore())

	rec := doJSON(t, router, http.MethodGet, "/api/v1/programs/kbtu-cs", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var p catalog.ProgramRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "kbtu", p.UniversityID)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/programs/ghost", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPortfolio_Lifecycle(t *testing.T) {
	router := newTestRouter(t, portfolio.NewMemoryStore())

	ent := 118
	gpa := 4.1
	saved := models.Portfolio{
		ENTScore:     &ent,
		GPA:          &gpa,
		Achievements: []string{"science fair"},
	}

	rec := doJSON(t, router, http.MethodPut, "/api/v1/portfolio/user-1", saved)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/portfolio/user-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var loaded models.Portfolio
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loaded))
	require.NotNil(t, loaded.ENTScore)
	assert.Equal(t, 118, *loaded.ENTScore)
	assert.Equal(t, []string{"science fair"}, loaded.Achievements)

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/portfolio/user-1", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/portfolio/user-1", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, errors.ErrCodePortfolioNotFound, decodeError(t, rec).Code)
}

func TestSavePortfolio_RejectsOutOfRangeValues(t *testing.T) {
	router := newTestRouter(t, portfolio.NewMemoryStore())

	tests := []struct {
		name string
		body models.Portfolio
	}{
		{"ent too high", func() models.Portfolio { v := 141; return models.Portfolio{ENTScore: &v} }()},
		{"ent negative", func() models.Portfolio { v := -1; return models.Portfolio{ENTScore: &v} }()},
		{"gpa too high", func() models.Portfolio { v := 5.1; return models.Portfolio{GPA: &v} }()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPut, "/api/v1/portfolio/user-1", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, errors.ErrCodeInvalidRequest, decodeError(t, rec).Code)
		})
	}
}

func TestMalformedJSONBody(t *testing.T) {
	router := newTestRouter(t, portfolio.NewMemoryStore())

	for _, path := range []string{"/api/v1/admission-chance", "/api/v1/match", "/api/v1/chat"} {
		req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString("{broken"))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, fmt.Sprintf("path %s", path))
	}
}

func TestNotFoundCatchAll(t *testing.T) {
	router := newTestRouter(t, portfolio.NewMemoryStore())

	rec := doJSON(t, router, http.MethodGet, "/api/v1/nope", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not found", body["error"])
	assert.Equal(t, "/api/v1/nope", body["path"])
}

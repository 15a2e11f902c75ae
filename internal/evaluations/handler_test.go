package evaluations

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"advisor-backend/internal/shared/server/middleware"
)

func setupRouter(t *testing.T) (*gin.Engine, *MemoryRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := NewMemoryRepo()
	handler := NewHandler(NewService(repo))

	r := gin.New()
	r.Use(middleware.Identity())
	api := r.Group("/api/v1")
	handler.RegisterRoutes(api)
	return r, repo
}

func postEvaluation(t *testing.T, r *gin.Engine, clientID string, payload map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/evaluations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if clientID != "" {
		req.Header.Set("X-Client-Id", clientID)
	}
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func validPayload() map[string]any {
	return map[string]any{
		"timeBudget":     "over_4h",
		"knowledgeLevel": "advanced",
		"monthlyBudget":  1500,
		"urgency":        "relaxed",
		"learningStyle":  "visual",
	}
}

func TestCreateEvaluation(t *testing.T) {
	r, repo := setupRouter(t)

	resp := postEvaluation(t, r, "client-1", validPayload())
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created EvaluationResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.EvaluationID == "" {
		t.Fatalf("expected evaluationId, got empty")
	}
	if created.Recommendation != "systematic + project-driven + custom-plan" {
		t.Fatalf("unexpected recommendation %q", created.Recommendation)
	}
	if created.Confidence != 80 {
		t.Fatalf("expected confidence 80, got %d", created.Confidence)
	}
	if created.Effectiveness != 90 {
		t.Fatalf("expected effectiveness 90, got %d", created.Effectiveness)
	}
	if len(created.Reasoning) != 4 {
		t.Fatalf("expected 4 reasoning entries, got %d", len(created.Reasoning))
	}
	if len(created.Factors) != 5 {
		t.Fatalf("expected 5 factor details, got %d", len(created.Factors))
	}

	stored, err := repo.GetByID(context.Background(), "client-1", created.EvaluationID)
	if err != nil {
		t.Fatalf("get stored evaluation: %v", err)
	}
	if stored.Recommendation != created.Recommendation {
		t.Fatalf("stored recommendation mismatch: %q", stored.Recommendation)
	}
}

func TestCreateEvaluationUnknownStyleDoesNotFail(t *testing.T) {
	r, _ := setupRouter(t)

	payload := validPayload()
	payload["learningStyle"] = "telepathic"
	resp := postEvaluation(t, r, "client-1", payload)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created EvaluationResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.StyleAdaptation == "" {
		t.Fatalf("expected fallback style adaptation, got empty")
	}
}

func TestCreateEvaluationValidation(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(map[string]any)
		message string
	}{
		{
			name:   "missing_time_budget",
			mutate: func(p map[string]any) { delete(p, "timeBudget") },
		},
		{
			name:   "missing_monthly_budget",
			mutate: func(p map[string]any) { delete(p, "monthlyBudget") },
		},
		{
			name:   "budget_below_range",
			mutate: func(p map[string]any) { p["monthlyBudget"] = -1 },
		},
		{
			name:   "budget_above_range",
			mutate: func(p map[string]any) { p["monthlyBudget"] = 2001 },
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, _ := setupRouter(t)
			payload := validPayload()
			tc.mutate(payload)
			resp := postEvaluation(t, r, "client-1", payload)
			if resp.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d: %s", resp.Code, resp.Body.String())
			}
		})
	}
}

func TestGetEvaluationScopedToClient(t *testing.T) {
	r, _ := setupRouter(t)

	resp := postEvaluation(t, r, "client-1", validPayload())
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	var created EvaluationResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/evaluations/"+created.EvaluationID, nil)
	req.Header.Set("X-Client-Id", "client-1")
	getResp := httptest.NewRecorder()
	r.ServeHTTP(getResp, req)
	if getResp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", getResp.Code)
	}

	// another client must not see it
	req = httptest.NewRequest(http.MethodGet, "/api/v1/evaluations/"+created.EvaluationID, nil)
	req.Header.Set("X-Client-Id", "client-2")
	otherResp := httptest.NewRecorder()
	r.ServeHTTP(otherResp, req)
	if otherResp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", otherResp.Code)
	}
}

func TestGetEvaluationNotFound(t *testing.T) {
	r, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/evaluations/missing", nil)
	req.Header.Set("X-Client-Id", "client-1")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestListEvaluationsNewestFirst(t *testing.T) {
	r, _ := setupRouter(t)

	first := postEvaluation(t, r, "client-1", validPayload())
	if first.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", first.Code)
	}
	payload := validPayload()
	payload["urgency"] = "urgent"
	second := postEvaluation(t, r, "client-1", payload)
	if second.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", second.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/evaluations", nil)
	req.Header.Set("X-Client-Id", "client-1")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var listed struct {
		Evaluations []EvaluationResponse `json:"evaluations"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listed); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(listed.Evaluations) != 2 {
		t.Fatalf("expected 2 evaluations, got %d", len(listed.Evaluations))
	}
	if listed.Evaluations[0].Recommendation != "intensive-training + project-driven + custom-plan" {
		t.Fatalf("expected newest first, got %q", listed.Evaluations[0].Recommendation)
	}
}

func TestListEvaluationsCappedByMaxList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := NewMemoryRepo()
	handler := NewHandler(NewService(repo))
	handler.MaxList = 1

	r := gin.New()
	r.Use(middleware.Identity())
	api := r.Group("/api/v1")
	handler.RegisterRoutes(api)

	for i := 0; i < 3; i++ {
		resp := postEvaluation(t, r, "client-1", validPayload())
		if resp.Code != http.StatusCreated {
			t.Fatalf("expected status 201, got %d", resp.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/evaluations?limit=10", nil)
	req.Header.Set("X-Client-Id", "client-1")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var listed struct {
		Evaluations []EvaluationResponse `json:"evaluations"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listed); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(listed.Evaluations) != 1 {
		t.Fatalf("expected cap of 1 evaluation, got %d", len(listed.Evaluations))
	}
}

func TestListEvaluationsBadLimit(t *testing.T) {
	r, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/evaluations?limit=zero", nil)
	req.Header.Set("X-Client-Id", "client-1")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

package reference

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1")
	NewHandler(NewService()).RegisterRoutes(api)
	return r
}

func getJSON(t *testing.T, r *gin.Engine, path string, out any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("%s: expected 200, got %d", path, resp.Code)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("%s: decode response: %v", path, err)
	}
}

func TestMethodUtilitiesCatalog(t *testing.T) {
	r := setupRouter(t)

	var payload struct {
		Methods []MethodUtility `json:"methods"`
	}
	getJSON(t, r, "/api/v1/reference/methods", &payload)

	if len(payload.Methods) != 8 {
		t.Fatalf("expected 8 methods, got %d", len(payload.Methods))
	}
	utilities := make(map[string]int, len(payload.Methods))
	for _, m := range payload.Methods {
		if m.Utility < 0 || m.Utility > 100 {
			t.Fatalf("method %q utility out of range: %d", m.Method, m.Utility)
		}
		utilities[m.Method] = m.Utility
	}
	if utilities["intensive-training"] != 90 {
		t.Fatalf("expected intensive-training utility 90, got %d", utilities["intensive-training"])
	}
	if utilities["free-resources"] != 65 {
		t.Fatalf("expected free-resources utility 65, got %d", utilities["free-resources"])
	}
}

func TestDecisionNodesCatalog(t *testing.T) {
	r := setupRouter(t)

	var payload struct {
		Nodes []DecisionNode `json:"nodes"`
	}
	getJSON(t, r, "/api/v1/reference/decision-nodes", &payload)

	if len(payload.Nodes) != 4 {
		t.Fatalf("expected 4 nodes, got %d", len(payload.Nodes))
	}
	if payload.Nodes[0].Weight != "30%" {
		t.Fatalf("expected first node weight 30%%, got %q", payload.Nodes[0].Weight)
	}
}

func TestOutlineIsDisplayText(t *testing.T) {
	r := setupRouter(t)

	var payload struct {
		Outline string `json:"outline"`
	}
	getJSON(t, r, "/api/v1/reference/outline", &payload)

	if !strings.Contains(payload.Outline, "learning needs analysis (root)") {
		t.Fatalf("expected outline root line, got %q", payload.Outline)
	}
}

func TestSuggestionsEndpoint(t *testing.T) {
	r := setupRouter(t)

	var payload struct {
		Suggestions []string `json:"suggestions"`
	}
	getJSON(t, r, "/api/v1/reference/suggestions", &payload)

	if len(payload.Suggestions) == 0 {
		t.Fatalf("expected suggestions, got none")
	}
}

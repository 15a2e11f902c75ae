package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"advisor-backend/internal/shared/config"
	"advisor-backend/internal/shared/server/middleware"
)

func testRouterDeps() RouterDeps {
	return RouterDeps{
		Config: config.Config{
			Port:            "8080",
			CORSAllowOrigin: []string{"http://localhost:5173"},
			EvaluateRate:    10,
			EvaluateBurst:   5,
		},
		RateLimiter: middleware.NewRateLimiter(nil),
	}
}

func TestHealthEndpoint(t *testing.T) {
	r := NewRouter(testRouterDeps())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if ok, _ := body["ok"].(bool); !ok {
		t.Fatalf("expected ok=true, got %v", body)
	}
	if w.Header().Get("X-Request-Id") == "" {
		t.Fatalf("expected request id header on responses")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	r := NewRouter(testRouterDeps())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "evaluation_started_total") {
		t.Fatalf("expected counters in metrics output, got %q", w.Body.String())
	}
}

func TestAddrNormalization(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ":8080"},
		{"9090", ":9090"},
		{":7000", ":7000"},
	}
	for _, tc := range cases {
		if got := Addr(tc.in); got != tc.want {
			t.Fatalf("Addr(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

package handlers

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v3"
)

type staticReadiness bool

func (r staticReadiness) Ready() bool { return bool(r) }

func TestProbes(t *testing.T) {
	tests := []struct {
		name     string
		ready    bool
		path     string
		wantCode int
	}{
		{"liveness while loading", false, "/healthz", 200},
		{"readiness without artifacts", false, "/readyz", 503},
		{"readiness with artifacts", true, "/readyz", 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewProbeHandler(staticReadiness(tt.ready))
			app := fiber.New()
			app.Get("/healthz", h.Liveness)
			app.Get("/readyz", h.Readiness)

			req, _ := http.NewRequest("GET", tt.path, nil)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != tt.wantCode {
				t.Errorf("expected %d, got %d", tt.wantCode, resp.StatusCode)
			}
		})
	}
}

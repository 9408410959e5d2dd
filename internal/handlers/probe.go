package handlers

import (
	"github.com/gofiber/fiber/v3"
)

// Readiness reports whether the model artifacts are available.
type Readiness interface {
	Ready() bool
}

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	artifacts Readiness
}

// NewProbeHandler creates a new probe handler.
func NewProbeHandler(artifacts Readiness) *ProbeHandler {
	return &ProbeHandler{artifacts: artifacts}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// Returns 200 OK if the application can serve estimates (artifacts are loaded).
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if !h.artifacts.Ready() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "error",
			"error":  "model artifacts unavailable",
		})
	}

	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

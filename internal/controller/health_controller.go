// internal/controller/health_controller.go
package controller

import (
	"net/http"
	"time"
)

const apiVersion = "2.0.0-cloud"

type HealthController struct {
	StartedAt time.Time
}

// Health handles GET /health, used by the hosting platform's liveness probe.
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(c.StartedAt).Seconds(),
	})
}

// Test handles GET /api/test, a connectivity probe for the frontend.
func (c *HealthController) Test(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"message":   "Backend online! ✅",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   apiVersion,
	})
}

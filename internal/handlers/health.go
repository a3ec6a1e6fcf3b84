package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

// HealthResponse represents the health check response
// swagger:model HealthResponse
type HealthResponse struct {
	// Service status
	// example: ok
	Status string `json:"status"`

	// Current server time, UTC RFC3339
	// example: 2025-01-02T15:04:05Z
	Time string `json:"time"`
}

// NewHealthHandler returns an HTTP handler for the health check.
// @Summary Health check
// @Description Reports service liveness and current server time
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Service is up"
// @Router /health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(HealthResponse{
			Status: "ok",
			Time:   time.Now().UTC().Format(time.RFC3339),
		})
	}
}

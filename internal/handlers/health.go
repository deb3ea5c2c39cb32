package handlers

import "net/http"

// HealthResponse represents the liveness check answer
// swagger:model HealthResponse
type HealthResponse struct {
	// default: ok
	Status string `json:"status"`
}

// NewHealthHandler returns an HTTP handler for liveness checks.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Service is up"
// @Router /health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

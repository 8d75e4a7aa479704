package handler

import "net/http"

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// Healthz is a liveness probe endpoint.
// It returns 200 if the server is running. The service has no
// dependencies, so there is no separate readiness check.
//
// GET /healthz
func Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// Package handler provides HTTP request handlers.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/planetdemo/planetdemo/internal/handler/dto"
	"github.com/planetdemo/planetdemo/internal/middleware"
	"github.com/planetdemo/planetdemo/internal/model"
)

const (
	// Greeting is the body of the root endpoint.
	Greeting = "Hello from the root of the Hono app!"
	// NotFoundMessage is the body of every unmatched route.
	NotFoundMessage = "Route not found........"
)

// Handler serves the endpoints that are not procedures.
type Handler struct {
	logger *slog.Logger
}

// New creates a new Handler instance.
func New(logger *slog.Logger) *Handler {
	return &Handler{logger: logger}
}

// Hello returns the greeting.
// GET /
func (h *Handler) Hello(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, Greeting)
}

// Users returns the mock user.
// GET /users
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.UserProfile{ID: 1, Name: "Orenji"})
}

// Country echoes the caller's country from platform geo metadata.
// GET /country
func (h *Handler) Country(w http.ResponseWriter, r *http.Request) {
	geo := middleware.GeoFromContext(r.Context())
	writeJSON(w, http.StatusOK, dto.ToCountryResponse(geo))
}

// NotFound handles every unmatched path and method.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("route not found",
		slog.String("url", requestURL(r)),
		slog.String("method", r.Method),
		slog.String("request_id", middleware.GetRequestID(r.Context())),
	)
	writeText(w, http.StatusNotFound, NotFoundMessage)
}

func requestURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + r.URL.RequestURI()
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

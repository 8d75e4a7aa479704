package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/planetdemo/planetdemo/internal/handler/dto"
)

// Recoverer is a middleware that recovers from panics.
// It logs the panic with its stack and returns a 500 JSON error.
// In development the stack is also printed to stderr.
func Recoverer(logger *slog.Logger, isDevelopment bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				logger.Error("panic recovered",
					slog.String("request_id", GetRequestID(r.Context())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Any("panic", rvr),
					slog.String("stack", string(debug.Stack())),
				)

				if isDevelopment {
					debug.PrintStack()
				}

				writeJSONError(w, http.StatusInternalServerError, dto.ErrorResponse{
					Error: "Internal server error",
					Code:  "INTERNAL_SERVER_ERROR",
				})
			}()

			next.ServeHTTP(w, r)
		})
	}
}

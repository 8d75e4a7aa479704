package middleware

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/planetdemo/planetdemo/internal/model"
)

// Geo returns a middleware that decodes platform geo metadata from header
// and stores it in the request context. The header value is JSON, optionally
// base64 encoded. A missing or malformed header leaves the context without geo.
func Geo(header string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(header)
			if raw == "" {
				next.ServeHTTP(w, r)
				return
			}

			geo, err := decodeGeo(raw)
			if err != nil {
				logger.Debug("ignoring malformed geo header",
					slog.String("header", header),
					slog.String("error", err.Error()),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithGeo(r.Context(), geo)))
		})
	}
}

func decodeGeo(raw string) (*model.Geo, error) {
	data := []byte(strings.TrimSpace(raw))
	if len(data) > 0 && data[0] != '{' {
		decoded, err := base64.StdEncoding.DecodeString(string(data))
		if err != nil {
			return nil, err
		}
		data = decoded
	}

	var geo model.Geo
	if err := json.Unmarshal(data, &geo); err != nil {
		return nil, err
	}
	return &geo, nil
}

// ContextWithGeo adds geo metadata to the context.
func ContextWithGeo(ctx context.Context, geo *model.Geo) context.Context {
	return context.WithValue(ctx, geoKey, geo)
}

// GeoFromContext retrieves geo metadata from the context.
// Returns nil if the platform supplied none.
func GeoFromContext(ctx context.Context) *model.Geo {
	geo, _ := ctx.Value(geoKey).(*model.Geo)
	return geo
}

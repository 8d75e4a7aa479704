package middleware

import (
	"bytes"
	"encoding/base64"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/planetdemo/planetdemo/internal/model"
)

const testGeoHeader = "X-Nf-Geo"

func TestGeo(t *testing.T) {
	const raw = `{"city":"Osaka","country":{"code":"JP","name":"Japan"},"timezone":"Asia/Tokyo"}`

	tests := []struct {
		name        string
		header      string
		wantNil     bool
		wantCountry string
	}{
		{"missing header", "", true, ""},
		{"plain json", raw, false, "Japan"},
		{"base64 json", base64.StdEncoding.EncodeToString([]byte(raw)), false, "Japan"},
		{"no country", `{"city":"Nowhere"}`, false, ""},
		{"malformed json", `{"country":`, true, ""},
		{"malformed base64", "!!!", true, ""},
	}

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var geo *model.Geo
			handler := Geo(testGeoHeader, logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				geo = GeoFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/country", nil)
			if tt.header != "" {
				req.Header.Set(testGeoHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			if (geo == nil) != tt.wantNil {
				t.Fatalf("geo = %+v, wantNil %v", geo, tt.wantNil)
			}
			if got := geo.CountryName(); got != tt.wantCountry {
				t.Errorf("CountryName() = %q, want %q", got, tt.wantCountry)
			}
		})
	}
}

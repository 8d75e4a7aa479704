package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/planetdemo/planetdemo/internal/handler/dto"
)

// writeJSONError writes an error body in the shape procedures use.
func writeJSONError(w http.ResponseWriter, status int, body dto.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

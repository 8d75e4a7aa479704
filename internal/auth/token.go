package auth

import (
	"net/http"
	"strings"
)

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
// The scheme is matched case-insensitively. Returns "" when the header is
// missing, uses another scheme, or carries an empty token.
func BearerToken(h http.Header) string {
	authHeader := strings.TrimSpace(h.Get("Authorization"))
	if authHeader == "" {
		return ""
	}

	scheme, token, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}

	return strings.TrimSpace(token)
}

// Package dto provides Data Transfer Objects for API requests and responses.
package dto

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error  string  `json:"error"`
	Code   string  `json:"code"`
	Issues []Issue `json:"issues,omitempty"`
}

// Issue points at one input field that failed validation.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Package model defines domain entities for the application.
package model

// User is the opaque identity a bearer token resolves to.
// It only lives inside the request context of a gated call.
type User struct {
	ID string `json:"id"`
}

// UserProfile is the payload of the mock users endpoint.
type UserProfile struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

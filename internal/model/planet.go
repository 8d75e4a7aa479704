// Package model defines domain entities for the application.
package model

// Planet is the resource served by the planet procedures.
type Planet struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// NewPlanet is the create payload: a Planet without its id.
type NewPlanet struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// ListPlanetsQuery holds validated list parameters.
// Limit is nil when the caller did not bound the page.
type ListPlanetsQuery struct {
	Limit  *int  `json:"limit,omitempty"`
	Cursor int64 `json:"cursor"`
}

// FindPlanetQuery identifies a single planet.
type FindPlanetQuery struct {
	ID int64 `json:"id"`
}

// Package schema declares the shapes the planet procedures accept and return.
// Each function returns a fresh schema so callers may annotate it freely.
package schema

import "github.com/getkin/kin-openapi/openapi3"

// ListLimitMax is the largest page size a list call may request.
const ListLimitMax = 100

// MaxInteger is the largest integer an id or cursor may take.
// Validation runs on float64 values, which hold integers exactly only up to 2^53-1.
const MaxInteger = 1<<53 - 1

// Planet is { id: integer >= 1, name: string, description?: string }.
func Planet() *openapi3.Schema {
	s := openapi3.NewObjectSchema().
		WithProperty("id", openapi3.NewInt64Schema().WithMin(1).WithMax(MaxInteger)).
		WithProperty("name", openapi3.NewStringSchema()).
		WithProperty("description", openapi3.NewStringSchema())
	s.Required = []string{"id", "name"}
	return s
}

// PlanetList is an array of Planet.
func PlanetList() *openapi3.Schema {
	return openapi3.NewArraySchema().WithItems(Planet())
}

// NewPlanet is Planet without its id.
func NewPlanet() *openapi3.Schema {
	s := openapi3.NewObjectSchema().
		WithProperty("name", openapi3.NewStringSchema()).
		WithProperty("description", openapi3.NewStringSchema())
	s.Required = []string{"name"}
	return s
}

// ListPlanetsInput is { limit?: 1..100, cursor: integer >= 0 = 0 }.
func ListPlanetsInput() *openapi3.Schema {
	return openapi3.NewObjectSchema().
		WithProperty("limit", openapi3.NewIntegerSchema().WithMin(1).WithMax(ListLimitMax)).
		WithProperty("cursor", openapi3.NewInt64Schema().WithMin(0).WithMax(MaxInteger).WithDefault(float64(0)))
}

// FindPlanetInput is { id: integer >= 1 }, taken from the path.
func FindPlanetInput() *openapi3.Schema {
	s := openapi3.NewObjectSchema().
		WithProperty("id", openapi3.NewInt64Schema().WithMin(1).WithMax(MaxInteger))
	s.Required = []string{"id"}
	return s
}

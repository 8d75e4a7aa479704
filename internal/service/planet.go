// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"

	"github.com/planetdemo/planetdemo/internal/model"
)

// Service errors.
var (
	ErrPlanetNotFound = errors.New("planet not found")
)

// PlanetService is the business logic behind the planet procedures.
// Inputs reach it already validated.
type PlanetService interface {
	ListPlanets(ctx context.Context, query model.ListPlanetsQuery) ([]model.Planet, error)
	FindPlanet(ctx context.Context, query model.FindPlanetQuery) (*model.Planet, error)
	CreatePlanet(ctx context.Context, input model.NewPlanet, owner model.User) (*model.Planet, error)
}

const (
	referenceID   = 1
	referenceName = "name"
)

// StubPlanetService serves fixed reference data.
// Pagination is not applied and find returns the same record for any id.
type StubPlanetService struct{}

// NewStubPlanetService creates a new StubPlanetService.
func NewStubPlanetService() *StubPlanetService {
	return &StubPlanetService{}
}

// ListPlanets returns the single reference planet.
func (s *StubPlanetService) ListPlanets(ctx context.Context, query model.ListPlanetsQuery) ([]model.Planet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []model.Planet{reference()}, nil
}

// FindPlanet returns the reference planet regardless of the requested id.
func (s *StubPlanetService) FindPlanet(ctx context.Context, query model.FindPlanetQuery) (*model.Planet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	planet := reference()
	return &planet, nil
}

// CreatePlanet acknowledges the payload and returns the reference planet.
// Nothing is stored.
func (s *StubPlanetService) CreatePlanet(ctx context.Context, input model.NewPlanet, owner model.User) (*model.Planet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	planet := reference()
	return &planet, nil
}

func reference() model.Planet {
	return model.Planet{ID: referenceID, Name: referenceName}
}

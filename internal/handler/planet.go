package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/planetdemo/planetdemo/internal/auth"
	"github.com/planetdemo/planetdemo/internal/model"
	"github.com/planetdemo/planetdemo/internal/rpc"
	"github.com/planetdemo/planetdemo/internal/schema"
	"github.com/planetdemo/planetdemo/internal/service"
)

// PlanetHandler implements the planet procedures.
type PlanetHandler struct {
	svc    service.PlanetService
	logger *slog.Logger
}

// NewPlanetHandler creates a new PlanetHandler.
func NewPlanetHandler(svc service.PlanetService, logger *slog.Logger) *PlanetHandler {
	return &PlanetHandler{
		svc:    svc,
		logger: logger,
	}
}

// Router declares the planet procedures. gate guards create.
func (h *PlanetHandler) Router(gate rpc.Gate) rpc.Router {
	return rpc.Router{
		"list": rpc.New(http.MethodGet, "/planets",
			schema.ListPlanetsInput(), schema.PlanetList(), h.List,
			rpc.WithSummary("List planets"),
			rpc.WithDescription("Returns a page of planets. limit bounds the page size, cursor is the offset to start from."),
			rpc.WithTags("planets"),
		),
		"find": rpc.New(http.MethodGet, "/planets/{id}",
			schema.FindPlanetInput(), schema.Planet(), h.Find,
			rpc.WithSummary("Find a planet"),
			rpc.WithTags("planets"),
			rpc.WithErrors(rpc.CodeNotFound),
		),
		"create": rpc.New(http.MethodPost, "/planets",
			schema.NewPlanet(), schema.Planet(), h.Create,
			rpc.WithSummary("Create a planet"),
			rpc.WithTags("planets"),
			rpc.WithGate(gate),
			rpc.WithSecurity(rpc.BearerAuth),
			rpc.WithErrors(rpc.CodeUnauthorized),
		),
	}
}

// List handles planet.list.
func (h *PlanetHandler) List(ctx context.Context, query model.ListPlanetsQuery) ([]model.Planet, error) {
	planets, err := h.svc.ListPlanets(ctx, query)
	if err != nil {
		return nil, h.handleServiceError(err)
	}
	if planets == nil {
		planets = []model.Planet{}
	}
	return planets, nil
}

// Find handles planet.find.
func (h *PlanetHandler) Find(ctx context.Context, query model.FindPlanetQuery) (*model.Planet, error) {
	planet, err := h.svc.FindPlanet(ctx, query)
	if err != nil {
		return nil, h.handleServiceError(err)
	}
	return planet, nil
}

// Create handles planet.create. It runs behind the auth gate.
func (h *PlanetHandler) Create(ctx context.Context, input model.NewPlanet) (*model.Planet, error) {
	user := auth.MustUserFromContext(ctx)

	planet, err := h.svc.CreatePlanet(ctx, input, user)
	if err != nil {
		return nil, h.handleServiceError(err)
	}

	h.logger.Info("planet_created",
		"planet_id", planet.ID,
		"user_id", user.ID,
		"has_description", input.Description != nil,
	)

	return planet, nil
}

// handleServiceError maps service errors to procedure errors.
func (h *PlanetHandler) handleServiceError(err error) error {
	switch {
	case errors.Is(err, service.ErrPlanetNotFound):
		return rpc.NewError(rpc.CodeNotFound, "Planet not found").Wrap(err)
	default:
		return err
	}
}

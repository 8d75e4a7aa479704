// Package main is the entrypoint for the planet API server.
package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/planetdemo/planetdemo/internal/auth"
	"github.com/planetdemo/planetdemo/internal/config"
	"github.com/planetdemo/planetdemo/internal/handler"
	"github.com/planetdemo/planetdemo/internal/middleware"
	"github.com/planetdemo/planetdemo/internal/rpc"
	"github.com/planetdemo/planetdemo/internal/server"
	"github.com/planetdemo/planetdemo/internal/service"
)

const apiDescription = "Demonstration API serving planets."

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg)

	// Initialize procedures
	reg, err := newRegistry(logger, newResolver(cfg), service.NewStubPlanetService())
	if err != nil {
		logger.Error("failed to build procedure registry", "error", err)
		os.Exit(1)
	}

	// Setup router
	r, err := setupRouter(cfg, logger, reg)
	if err != nil {
		logger.Error("failed to setup router", "error", err)
		os.Exit(1)
	}

	// Create and run server
	srv := server.New(r, cfg, logger)

	logger.Info("starting server",
		"port", cfg.AppPort,
		"base_path", cfg.BasePath,
		"env", cfg.AppEnv,
		"procedures", reg.Len(),
		"jwt", cfg.UsesJWT(),
	)

	if err := srv.Run(context.Background()); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newResolver picks the bearer token resolver.
// Without a JWT secret every non-empty token is accepted.
func newResolver(cfg *config.Config) auth.Resolver {
	if cfg.UsesJWT() {
		return auth.NewJWTResolver(cfg.JWTSecret, cfg.JWTLeeway)
	}
	return auth.StubResolver{}
}

// newRegistry declares every procedure the API serves.
func newRegistry(logger *slog.Logger, resolver auth.Resolver, planets service.PlanetService) (*rpc.Registry, error) {
	planetHandler := handler.NewPlanetHandler(planets, logger)

	return rpc.NewRegistry(map[string]rpc.Router{
		"planet": planetHandler.Router(auth.Gate(resolver, logger)),
	})
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(cfg *config.Config, logger *slog.Logger, reg *rpc.Registry) (*chi.Mux, error) {
	doc, err := reg.Document(rpc.DocumentInfo{
		Title:       cfg.DocsTitle,
		Version:     cfg.DocsVersion,
		Description: apiDescription,
		ServerURL:   cfg.BasePath,
	})
	if err != nil {
		return nil, err
	}

	docsHandler, err := handler.NewDocsHandler(doc, joinPath(cfg.BasePath, "/spec.json"))
	if err != nil {
		return nil, err
	}

	h := handler.New(logger)

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.GetCORSAllowedOrigins()

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger, "/healthz"))
	r.Use(middleware.Recoverer(logger, cfg.IsDevelopment()))
	r.Use(middleware.Security(middleware.SecurityConfig{IsDevelopment: cfg.IsDevelopment()}))
	r.Use(middleware.CORS(corsCfg))
	r.Use(middleware.MaxBodySize(cfg.MaxRequestBodySize))
	r.Use(middleware.Geo(cfg.GeoHeader, logger))

	// Fallback for unmatched paths and methods; mounted routers inherit it
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.NotFound)

	// Liveness probe
	r.Get("/healthz", handler.Healthz)

	r.Route(cfg.BasePath, func(r chi.Router) {
		r.Get("/", h.Hello)
		r.Get("/users", h.Users)
		r.Get("/country", h.Country)

		reg.Mount(r, logger)

		r.Get("/spec.json", docsHandler.Spec)
		r.Get("/docs", docsHandler.Page)
	})

	return r, nil
}

// joinPath appends p to the base path without doubling the slash.
func joinPath(base, p string) string {
	return strings.TrimSuffix(base, "/") + p
}

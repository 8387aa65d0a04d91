package handlers

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"passvault/internal/config"
	"passvault/internal/middleware"
	"passvault/internal/service"
)

type Handler struct {
	Router chi.Router
}

// NewHandler wires the routes of the vault API.
func NewHandler(
	userService *service.UserService,
	entryService *service.EntryService,
	logger *zap.SugaredLogger,
	cfg *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(cfg.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger, cfg)
	entryHandler := NewEntryHandler(entryService, logger)

	// Auth routes
	r.Post("/auth/register", userHandler.Register)
	r.Post("/auth/login", userHandler.Login)

	// Credential routes (bearer token required)
	r.Get("/passwords", entryHandler.List)
	r.Post("/passwords", entryHandler.Create)
	r.Put("/passwords/{id}", entryHandler.Update)
	r.Delete("/passwords/{id}", entryHandler.Delete)

	return &Handler{Router: r}
}

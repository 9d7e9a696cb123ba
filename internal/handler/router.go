package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vaultpass/passgen-go/internal/middleware"
)

// RouterOptions configures NewRouter.
type RouterOptions struct {
	Logger         *slog.Logger
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter mounts the API routes. Background work started for the router
// stops when ctx is cancelled.
func NewRouter(ctx context.Context, gen *GeneratorHandler, opts RouterOptions) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(chimw.Recoverer)

	r.Get("/health", HandleHealth)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, opts.RateLimitRPS, opts.RateLimitBurst))
		r.Post("/api/v1/generate", gen.HandleGenerate)
	})

	return r
}

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/nikov/simplenote-backend/internal/api/handlers"
	"github.com/nikov/simplenote-backend/internal/api/middleware"
	"github.com/nikov/simplenote-backend/internal/auth"
	"github.com/nikov/simplenote-backend/internal/config"
	"github.com/nikov/simplenote-backend/internal/service"
	"gorm.io/gorm"
)

func NewRouter(services *service.Services, tokens *auth.TokenCodec, cfg *config.Config, db *gorm.DB) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS(cfg.CORSOrigins))

	authHandler := handlers.NewAuthHandler(services.Auth, cfg.TokenTTL, cfg.CookieSecure)
	documentHandler := handlers.NewDocumentHandler(services.Document)
	assistantHandler := handlers.NewAssistantHandler(services.Assistant)
	healthHandler := handlers.NewHealthHandler(db)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.Check)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(tokens))
				r.Get("/me", authHandler.Me)
			})
		})

		// Everything below requires a verified session.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(tokens))

			r.Route("/documents", func(r chi.Router) {
				r.Get("/", documentHandler.List)
				r.Post("/", documentHandler.Create)
				r.Get("/{id}", documentHandler.Get)
				r.Put("/{id}", documentHandler.Update)
				r.Delete("/{id}", documentHandler.Delete)
			})

			r.Route("/ai", func(r chi.Router) {
				r.Post("/summarize", assistantHandler.Summarize)
				r.Post("/rewrite", assistantHandler.Rewrite)
			})

			r.Post("/speech/transcribe", assistantHandler.Transcribe)
		})
	})

	return r
}

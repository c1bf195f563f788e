package app

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/akinlade-dev/Extracta/internal/api/handlers"
	appMiddleware "github.com/akinlade-dev/Extracta/internal/api/middlewares"
	"github.com/akinlade-dev/Extracta/internal/config"
	"github.com/akinlade-dev/Extracta/internal/core"
	"github.com/akinlade-dev/Extracta/internal/core/archive"
	db "github.com/akinlade-dev/Extracta/internal/core/database"
)

// Server wraps the HTTP server instance and its handlers.
type Server struct {
	httpServer *http.Server
}

// NewServer builds and wires all routes. When JWT_SECRET is set the extraction
// endpoints require a bearer token; otherwise they are open.
func NewServer(cfg *config.Config, extractor core.TextExtractor, archiver archive.Archiver, dbClient db.DbClient) *Server {
	templateHandler := handlers.NewTemplateHandler()
	extractHandler := handlers.NewExtractHandler(extractor, archiver, cfg.MaxUploadMB)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
	}))

	// public endpoints
	r.Get("/", templateHandler.Health)
	r.Get("/health", templateHandler.Health)
	r.Get("/templates", templateHandler.ListTemplates)

	// extraction endpoints, optionally behind bearer auth
	r.Group(func(protected chi.Router) {
		if cfg.JWTSecret != "" {
			protected.Use(appMiddleware.JWTMiddleware(cfg.JWTSecret))
		}
		protected.Post("/extract", extractHandler.Extract)
		protected.Post("/extract-custom", extractHandler.ExtractCustom)

		if dbClient != nil {
			recordsHandler := handlers.NewRecordsHandler(dbClient)
			protected.Get("/extractions", recordsHandler.ListExtractions)
		}
	})

	httpSrv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	return &Server{httpServer: httpSrv}
}

// Start runs the HTTP server.
func (s *Server) Start() {
	log.Printf("HTTP server listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Shutting down HTTP server...")
	return s.httpServer.Shutdown(ctx)
}

// Package http provides HTTP routing and middleware configuration
// for the attachment service.
package http

import (
	"net/http"

	"github.com/princewidd/widhi-productivity-hub/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
)

// NewRouter constructs and returns an HTTP handler that serves the
// attachment service API and the stored files themselves.
//
// Routes:
//
//	POST   /upload              → attachmentHandler.Upload
//	DELETE /uploads/{filename}  → attachmentHandler.Delete
//	GET    /uploads/*           → static file server over the upload dir
//	GET    /api/health          → healthHandler.Health
func NewRouter(
	attachmentHandler *AttachmentHandler,
	healthHandler *HealthHandler,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	r.Post("/upload", attachmentHandler.Upload)
	r.Delete("/uploads/{filename}", attachmentHandler.Delete)

	// Serve stored files directly
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(attachmentHandler.Dir)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.Health)
	})

	return r
}

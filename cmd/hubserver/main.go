// Package main initializes and starts the attachment server, setting up
// configuration, logging, the upload directory, handlers, and routing.
package main

import (
	"cmp"
	"fmt"
	"os"

	nethttp "net/http"

	"github.com/princewidd/widhi-productivity-hub/internal/config"
	"github.com/princewidd/widhi-productivity-hub/internal/logger"
	"github.com/princewidd/widhi-productivity-hub/internal/server/handler/http"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// Make sure the upload directory exists before serving.
	if err := os.MkdirAll(options.UploadDir, 0o755); err != nil {
		zapLogger.Fatal("cannot create upload directory", zap.Error(err))
	}

	attachmentHandler := &http.AttachmentHandler{
		Dir:    options.UploadDir,
		Hosted: options.Hosted,
		Log:    zapLogger,
	}
	healthHandler := &http.HealthHandler{Environment: options.Environment}

	// Build the router with middleware and routes.
	router := http.NewRouter(attachmentHandler, healthHandler, zapLogger)

	zapLogger.Info("starting attachment server",
		zap.String("addr", options.Addr),
		zap.String("uploadDir", options.UploadDir),
		zap.Bool("hosted", options.Hosted),
	)
	if err := nethttp.ListenAndServe(options.Addr, router); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}

package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"cutout/internal/gateway/config"
	"cutout/internal/gateway/handler"
	"cutout/internal/gateway/publish"
	"cutout/internal/gateway/relay"
	"cutout/internal/gateway/repository/artifact"
	"cutout/internal/gateway/server"
)

type App struct {
	server          *server.Server
	shutdownTimeout time.Duration
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	log.Printf("config: ai backend=%s timeout=%s", cfg.AI.Endpoint, cfg.AI.Timeout)
	log.Printf("config: minio endpoint=%s bucket=%s secure=%t", cfg.Minio.Endpoint, cfg.Minio.Bucket, cfg.Minio.UseSSL)

	// Dependencies
	store, err := artifact.NewMinioStore(artifact.MinioConfig{
		Endpoint:  cfg.Minio.Endpoint,
		Region:    cfg.Minio.Region,
		AccessKey: cfg.Minio.AccessKey,
		SecretKey: cfg.Minio.SecretKey,
		Bucket:    cfg.Minio.Bucket,
		UseSSL:    cfg.Minio.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize artifact store: %w", err)
	}

	remover := relay.NewClient(cfg.AI.Endpoint, cfg.AI.Timeout)
	recent := publish.NewRecentLog(0)
	publisher := publish.New(store, recent)

	uploadHandler := handler.NewUploadHandler(remover, publisher)
	healthHandler := handler.NewHealthHandler()
	artifactsHandler := handler.NewArtifactsHandler(recent)

	// Routing & Server
	mux := server.NewMux(uploadHandler, healthHandler, artifactsHandler)
	srv := server.New(cfg.Port, mux)

	return &App{
		server:          srv,
		shutdownTimeout: cfg.ShutdownTimeout,
	}, nil
}

// ShutdownTimeout is how long in-flight requests get to drain on exit.
func (a *App) ShutdownTimeout() time.Duration {
	if a.shutdownTimeout <= 0 {
		return 5 * time.Second
	}
	return a.shutdownTimeout
}

func (a *App) Start() error {
	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	return a.server.Shutdown(ctx)
}

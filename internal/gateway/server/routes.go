package server

import (
	"net/http"

	"cutout/internal/gateway/handler"
	"cutout/internal/gateway/middleware"
)

func NewMux(
	uploadHandler *handler.UploadHandler,
	healthHandler *handler.HealthHandler,
	artifactsHandler *handler.ArtifactsHandler,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/upload-image", uploadHandler.HandleUpload)
	mux.HandleFunc("/api/artifacts/recent", artifactsHandler.HandleRecent)
	mux.HandleFunc("/health", healthHandler.HandleHealth)

	return middleware.CORS(mux)
}

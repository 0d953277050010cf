package handler

import (
	"net/http"

	"cutout/internal/gateway/publish"
)

// ArtifactsHandler serves the in-process listing of recently published
// artifacts.
type ArtifactsHandler struct {
	recent *publish.RecentLog
}

func NewArtifactsHandler(recent *publish.RecentLog) *ArtifactsHandler {
	return &ArtifactsHandler{recent: recent}
}

func (h *ArtifactsHandler) HandleRecent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	artifacts := h.recent.List()
	if artifacts == nil {
		artifacts = []publish.Artifact{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"artifacts": artifacts,
		"count":     len(artifacts),
	})
}

package handler

import (
	"encoding/json"
	"log"
	"net/http"
)

// AIStatus mirrors the upstream AI service's verdict in the response envelope.
type AIStatus struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}

// StorageStatus reports the object-store handoff. Omitted entirely when the
// pipeline failed before publishing.
type StorageStatus struct {
	Success          bool   `json:"success"`
	Filename         string `json:"filename,omitempty"`
	OriginalFilename string `json:"original_filename,omitempty"`
	URL              string `json:"url,omitempty"`
	Storage          string `json:"storage,omitempty"`
	Bucket           string `json:"bucket,omitempty"`
	Message          string `json:"message,omitempty"`
}

// Envelope is the response shape for /api/upload-image.
type Envelope struct {
	Success       bool           `json:"success"`
	Message       string         `json:"message"`
	AIStatus      *AIStatus      `json:"ai_status,omitempty"`
	StorageStatus *StorageStatus `json:"storage_status,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("handler: write response: %v", err)
	}
}

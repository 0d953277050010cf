package handler

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"

	"cutout/internal/gateway/publish"
	"cutout/internal/gateway/relay"
	"cutout/internal/gateway/repository/artifact"
)

// Uploads above this limit are rejected before touching the backend.
const maxUploadBytes = 10 << 20 // 10 MiB

// BackgroundRemover relays a payload to the AI backend and classifies the
// answer.
type BackgroundRemover interface {
	RemoveBackground(ctx context.Context, filename string, payload []byte) relay.Outcome
}

// ArtifactPublisher commits a processed image and mints its download link.
type ArtifactPublisher interface {
	Publish(ctx context.Context, image []byte, originalFilename string) (*publish.Artifact, error)
}

// UploadHandler runs the upload pipeline: validate, relay, publish. Each
// stage short-circuits on the first failure and the failure is surfaced
// verbatim in the envelope.
type UploadHandler struct {
	remover   BackgroundRemover
	publisher ArtifactPublisher
}

func NewUploadHandler(remover BackgroundRemover, publisher ArtifactPublisher) *UploadHandler {
	return &UploadHandler{remover: remover, publisher: publisher}
}

func (h *UploadHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	req, err := parseUploadRequest(w, r)
	if err != nil {
		log.Printf("upload: rejected: %v", err)
		writeJSON(w, http.StatusBadRequest, Envelope{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	log.Printf("upload: received %q (%d bytes)", req.Filename, len(req.Payload))

	outcome := h.remover.RemoveBackground(r.Context(), req.Filename, req.Payload)
	aiStatus := &AIStatus{StatusCode: outcome.StatusCode, Message: outcome.Message}
	if !outcome.Success() {
		log.Printf("upload: AI stage failed for %q: %d %s", req.Filename, outcome.StatusCode, outcome.Message)
		writeJSON(w, outcome.StatusCode, Envelope{
			Success:  false,
			Message:  "AI processing failed",
			AIStatus: aiStatus,
		})
		return
	}

	a, err := h.publisher.Publish(r.Context(), outcome.Image, req.Filename)
	if err != nil {
		status, msg := storageFailure(err)
		log.Printf("upload: storage stage failed for %q: %v", req.Filename, err)
		writeJSON(w, status, Envelope{
			Success:  false,
			Message:  msg,
			AIStatus: aiStatus,
			StorageStatus: &StorageStatus{
				Success: false,
				Message: err.Error(),
			},
		})
		return
	}

	log.Printf("upload: done, %s/%s", a.Bucket, a.StorageKey)
	writeJSON(w, http.StatusOK, Envelope{
		Success:  true,
		Message:  "image processed and stored",
		AIStatus: aiStatus,
		StorageStatus: &StorageStatus{
			Success:          true,
			Filename:         a.StorageKey,
			OriginalFilename: a.OriginalFilename,
			URL:              a.URL,
			Storage:          "minio",
			Bucket:           a.Bucket,
		},
	})
}

func parseUploadRequest(w http.ResponseWriter, r *http.Request) (UploadRequest, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return UploadRequest{}, errors.New("upload exceeds the 10 MiB limit")
		}
		// A POST without the image part still validates as missing payload.
		return UploadRequest{}, ErrMissingPayload
	}

	req := UploadRequest{Filename: r.FormValue("filename")}
	file, _, err := r.FormFile("image_data")
	if err == nil {
		defer file.Close()
		req.Payload, err = io.ReadAll(file)
		if err != nil {
			return UploadRequest{}, errors.New("failed to read uploaded image")
		}
	}

	if err := validate(req); err != nil {
		return UploadRequest{}, err
	}
	return req, nil
}

func storageFailure(err error) (int, string) {
	if errors.Is(err, artifact.ErrUnavailable) {
		return http.StatusServiceUnavailable, "storage service unavailable"
	}
	return http.StatusInternalServerError, "image storage failed"
}

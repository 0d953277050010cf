package handler

import (
	"errors"
	"strings"
)

var (
	ErrMissingPayload  = errors.New("missing image payload (field: image_data)")
	ErrMissingFilename = errors.New("missing filename (field: filename)")
)

// UploadRequest is the validated inbound request, immutable for the rest of
// the pipeline.
type UploadRequest struct {
	Payload  []byte
	Filename string
}

// validate checks both fields are present. Pure; no side effects.
func validate(req UploadRequest) error {
	if len(req.Payload) == 0 {
		return ErrMissingPayload
	}
	if strings.TrimSpace(req.Filename) == "" {
		return ErrMissingFilename
	}
	return nil
}

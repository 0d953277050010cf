package artifact

import (
	"context"
	"errors"
	"time"
)

// Store defines operations for persisting processed images.
type Store interface {
	Put(ctx context.Context, key string, content []byte, contentType string) error
	PresignedGetURL(ctx context.Context, key string, expiry time.Duration) (string, error)
	Bucket() string
}

// ErrUnavailable means the object store could not be reached at all.
var ErrUnavailable = errors.New("object store unavailable")

// ErrWriteRejected means the store answered but refused the upload.
var ErrWriteRejected = errors.New("object store rejected write")

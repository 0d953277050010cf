package publish

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"cutout/internal/gateway/repository/artifact"
)

// Every stored artifact is normalized to PNG.
const (
	pngExtension   = ".png"
	pngContentType = "image/png"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

const URLExpiry = 7 * 24 * time.Hour

// Artifact describes one processed image committed to the object store.
type Artifact struct {
	StorageKey       string    `json:"filename"`
	OriginalFilename string    `json:"original_filename"`
	URL              string    `json:"url,omitempty"`
	Bucket           string    `json:"bucket"`
	UploadedAt       time.Time `json:"uploaded_at"`
}

// Publisher commits processed images to the object store and mints
// time-limited download links for them.
type Publisher struct {
	store  artifact.Store
	recent *RecentLog
	expiry time.Duration
}

func New(store artifact.Store, recent *RecentLog) *Publisher {
	return &Publisher{
		store:  store,
		recent: recent,
		expiry: URLExpiry,
	}
}

// Publish uploads the image under a fresh collision-resistant key and returns
// the stored artifact. The key never repeats across calls, so submitting the
// same image twice stores two objects. A presign failure after a successful
// upload is logged and leaves URL empty rather than failing the request.
func (p *Publisher) Publish(ctx context.Context, image []byte, originalFilename string) (*Artifact, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("image is empty")
	}

	if !bytes.HasPrefix(image, pngSignature) {
		// The backend occasionally re-encodes; store it anyway under .png.
		log.Printf("publish: image for %q lacks the PNG signature, storing as-is", originalFilename)
	}

	normalized := normalizeFilename(originalFilename)
	key := storageKey(normalized)

	if err := p.store.Put(ctx, key, image, pngContentType); err != nil {
		return nil, err
	}
	log.Printf("publish: stored %s/%s (%d bytes)", p.store.Bucket(), key, len(image))

	url, err := p.store.PresignedGetURL(ctx, key, p.expiry)
	if err != nil {
		log.Printf("publish: presign failed for %s: %v", key, err)
		url = ""
	}

	a := &Artifact{
		StorageKey:       key,
		OriginalFilename: normalized,
		URL:              url,
		Bucket:           p.store.Bucket(),
		UploadedAt:       time.Now().UTC(),
	}
	p.recent.Record(*a)
	return a, nil
}

// normalizeFilename forces the canonical .png extension, replacing whatever
// extension the caller supplied.
func normalizeFilename(name string) string {
	name = strings.TrimSpace(name)
	if strings.HasSuffix(strings.ToLower(name), pngExtension) {
		return name
	}
	if idx := strings.LastIndex(name, "."); idx > 0 {
		name = name[:idx]
	}
	return name + pngExtension
}

func storageKey(normalized string) string {
	base := normalized
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}
	return fmt.Sprintf("processed_%s_%s%s", randomID(), base, pngExtension)
}

func randomID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:4])
}

package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cutout/internal/gateway/publish"
)

func TestHandleHealth(t *testing.T) {
	h := NewHealthHandler()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.HandleHealth(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "healthy" {
		t.Fatalf("unexpected status %q", body["status"])
	}
}

func TestHandleRecent_EmptyAndPopulated(t *testing.T) {
	recent := publish.NewRecentLog(4)
	h := NewArtifactsHandler(recent)

	req := httptest.NewRequest(http.MethodGet, "/api/artifacts/recent", nil)
	rec := httptest.NewRecorder()
	h.HandleRecent(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Artifacts []publish.Artifact `json:"artifacts"`
		Count     int                `json:"count"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Count != 0 || body.Artifacts == nil {
		t.Fatalf("expected an empty list, got %+v", body)
	}

	recent.Record(publish.Artifact{StorageKey: "processed_00000000_a.png", Bucket: "processed-images"})
	rec = httptest.NewRecorder()
	h.HandleRecent(rec, httptest.NewRequest(http.MethodGet, "/api/artifacts/recent", nil))
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Count != 1 || body.Artifacts[0].StorageKey != "processed_00000000_a.png" {
		t.Fatalf("unexpected listing %+v", body)
	}
}

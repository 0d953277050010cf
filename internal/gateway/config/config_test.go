package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, v := range []string{"PORT", "SHUTDOWN_TIMEOUT_SECONDS", "AI_BACKEND_URL", "AI_TIMEOUT_SECONDS", "MINIO_ENDPOINT", "MINIO_ACCESS_KEY", "MINIO_SECRET_KEY", "MINIO_BUCKET_NAME", "MINIO_SECURE", "MINIO_REGION"} {
		t.Setenv(v, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Port != ":30000" {
		t.Fatalf("unexpected port %q", cfg.Port)
	}
	if cfg.AI.Endpoint != "http://localhost:8002/api/remove_bg" {
		t.Fatalf("unexpected ai endpoint %q", cfg.AI.Endpoint)
	}
	if cfg.AI.Timeout != 60*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.AI.Timeout)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Fatalf("unexpected shutdown timeout %v", cfg.ShutdownTimeout)
	}
	if cfg.Minio.Endpoint != "localhost:9000" || cfg.Minio.Bucket != "processed-images" {
		t.Fatalf("unexpected minio config %+v", cfg.Minio)
	}
	if cfg.Minio.UseSSL {
		t.Fatalf("secure transport must default off")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("AI_BACKEND_URL", "http://ai.internal:9001/api/remove_bg")
	t.Setenv("AI_TIMEOUT_SECONDS", "15")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "10")
	t.Setenv("MINIO_ENDPOINT", "minio.internal:9000")
	t.Setenv("MINIO_BUCKET_NAME", "cutouts")
	t.Setenv("MINIO_SECURE", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Port != ":8080" {
		t.Fatalf("port should gain a colon prefix, got %q", cfg.Port)
	}
	if cfg.AI.Endpoint != "http://ai.internal:9001/api/remove_bg" {
		t.Fatalf("unexpected ai endpoint %q", cfg.AI.Endpoint)
	}
	if cfg.AI.Timeout != 15*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.AI.Timeout)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected shutdown timeout %v", cfg.ShutdownTimeout)
	}
	if cfg.Minio.Bucket != "cutouts" || !cfg.Minio.UseSSL {
		t.Fatalf("unexpected minio config %+v", cfg.Minio)
	}
}

func TestLoad_BadTimeoutFallsBack(t *testing.T) {
	t.Setenv("AI_TIMEOUT_SECONDS", "not-a-number")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.AI.Timeout != 60*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.AI.Timeout)
	}
}

package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	ShutdownTimeout time.Duration
	AI              AIConfig
	Minio           MinioConfig
}

type AIConfig struct {
	Endpoint string
	Timeout  time.Duration
}

type MinioConfig struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = ":30000"
	} else if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	return &Config{
		Port:            port,
		ShutdownTimeout: loadSeconds("SHUTDOWN_TIMEOUT_SECONDS", 5*time.Second),
		AI: AIConfig{
			Endpoint: firstNonEmpty(strings.TrimSpace(os.Getenv("AI_BACKEND_URL")), "http://localhost:8002/api/remove_bg"),
			Timeout:  loadSeconds("AI_TIMEOUT_SECONDS", 60*time.Second),
		},
		Minio: MinioConfig{
			Endpoint:  firstNonEmpty(strings.TrimSpace(os.Getenv("MINIO_ENDPOINT")), "localhost:9000"),
			Region:    firstNonEmpty(strings.TrimSpace(os.Getenv("MINIO_REGION")), "us-east-1"),
			AccessKey: firstNonEmpty(strings.TrimSpace(os.Getenv("MINIO_ACCESS_KEY")), "minioadmin"),
			SecretKey: firstNonEmpty(strings.TrimSpace(os.Getenv("MINIO_SECRET_KEY")), "minioadmin"),
			Bucket:    firstNonEmpty(strings.TrimSpace(os.Getenv("MINIO_BUCKET_NAME")), "processed-images"),
			UseSSL:    loadBool("MINIO_SECURE", false),
		},
	}, nil
}

func loadSeconds(name string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs <= 0 {
		return fallback
	}
	return time.Duration(secs) * time.Second
}

func loadBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

package artifact

import (
	"testing"
)

func validConfig() MinioConfig {
	return MinioConfig{
		Endpoint:  "localhost:9000",
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
		Bucket:    "processed-images",
	}
}

func TestNewMinioStore_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*MinioConfig)
	}{
		{"missing endpoint", func(c *MinioConfig) { c.Endpoint = " " }},
		{"missing access key", func(c *MinioConfig) { c.AccessKey = "" }},
		{"missing secret key", func(c *MinioConfig) { c.SecretKey = "" }},
		{"missing bucket", func(c *MinioConfig) { c.Bucket = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			if _, err := NewMinioStore(cfg); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestNewMinioStore_Defaults(t *testing.T) {
	s, err := NewMinioStore(validConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Bucket() != "processed-images" {
		t.Fatalf("unexpected bucket %q", s.Bucket())
	}
	if s.region != "us-east-1" {
		t.Fatalf("expected default region, got %q", s.region)
	}
}

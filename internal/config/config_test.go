package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.AppEnv != "development" {
		t.Errorf("expected default AppEnv 'development', got %s", cfg.AppEnv)
	}

	if cfg.AppPort != 8080 {
		t.Errorf("expected default AppPort 8080, got %d", cfg.AppPort)
	}

	if cfg.BasePath != "/api" {
		t.Errorf("expected default BasePath '/api', got %s", cfg.BasePath)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("expected default LogLevel 'info', got %s", cfg.LogLevel)
	}

	if cfg.LogFormat != "json" {
		t.Errorf("expected default LogFormat 'json', got %s", cfg.LogFormat)
	}

	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("expected default ShutdownTimeout 30s, got %s", cfg.ShutdownTimeout)
	}

	if cfg.GeoHeader != "X-Nf-Geo" {
		t.Errorf("expected default GeoHeader 'X-Nf-Geo', got %s", cfg.GeoHeader)
	}

	if cfg.UsesJWT() {
		t.Error("expected stub token resolution by default")
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("BASE_PATH", "/v2")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("READ_TIMEOUT", "2s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.AppPort != 9090 {
		t.Errorf("expected AppPort 9090, got %d", cfg.AppPort)
	}
	if cfg.BasePath != "/v2" {
		t.Errorf("expected BasePath '/v2', got %s", cfg.BasePath)
	}
	if !cfg.UsesJWT() {
		t.Error("expected JWT resolution when JWT_SECRET is set")
	}
	if cfg.ReadTimeout != 2*time.Second {
		t.Errorf("expected ReadTimeout 2s, got %s", cfg.ReadTimeout)
	}
}

func TestLoad_InvalidBasePath(t *testing.T) {
	t.Setenv("BASE_PATH", "api")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for base path without leading slash, got nil")
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("APP_PORT", "not-a-number")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-numeric port, got nil")
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("DOCS_TITLE=From Dotenv\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(wd)
		os.Unsetenv("DOCS_TITLE")
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.DocsTitle != "From Dotenv" {
		t.Errorf("expected DocsTitle from .env, got %s", cfg.DocsTitle)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name     string
		basePath string
		maxBody  int64
		wantErr  bool
	}{
		{"default", "/api", 1 << 20, false},
		{"root", "/", 1 << 20, false},
		{"missing slash", "api", 1 << 20, true},
		{"trailing slash", "/api/", 1 << 20, true},
		{"zero body limit", "/api", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{BasePath: tt.basePath, MaxRequestBodySize: tt.maxBody}
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	cfg := &Config{AppEnv: "development"}
	if !cfg.IsDevelopment() {
		t.Error("expected IsDevelopment to return true")
	}

	cfg.AppEnv = "production"
	if cfg.IsDevelopment() {
		t.Error("expected IsDevelopment to return false")
	}
}

func TestConfig_GetCORSAllowedOrigins(t *testing.T) {
	cfg := &Config{CORSAllowedOrigins: " https://a.example , ,https://b.example"}
	got := cfg.GetCORSAllowedOrigins()
	if len(got) != 2 || got[0] != "https://a.example" || got[1] != "https://b.example" {
		t.Errorf("unexpected origins: %v", got)
	}

	cfg.CORSAllowedOrigins = ""
	if got := cfg.GetCORSAllowedOrigins(); got != nil {
		t.Errorf("expected nil origins, got %v", got)
	}
}

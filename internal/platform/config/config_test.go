package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORTAL_CONFIG", "")
	t.Setenv("PORTAL_API_ROOT", "")

	cfg := Load()
	if cfg.APIRoot != "http://localhost:8080" {
		t.Fatalf("expected local fallback API root, got %q", cfg.APIRoot)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Fatalf("expected 30s default timeout, got %v", cfg.RequestTimeout)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portal.toml")
	file := []byte("api_root = \"http://from-file:9000\"\ntimeout = \"5s\"\nauth_token = \"file-token\"\n")
	if err := os.WriteFile(path, file, 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	t.Setenv("PORTAL_CONFIG", path)
	t.Setenv("PORTAL_API_ROOT", "http://from-env:9001")

	cfg := Load()
	if cfg.APIRoot != "http://from-env:9001" {
		t.Fatalf("expected env to override file, got %q", cfg.APIRoot)
	}
	if cfg.AuthToken != "file-token" {
		t.Fatalf("expected file token, got %q", cfg.AuthToken)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Fatalf("expected file timeout, got %v", cfg.RequestTimeout)
	}
}

func TestLoadIgnoresMissingFile(t *testing.T) {
	t.Setenv("PORTAL_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	cfg := Load()
	if cfg.APIRoot != "http://localhost:8080" {
		t.Fatalf("expected defaults when file is missing, got %q", cfg.APIRoot)
	}
}

func TestValidate(t *testing.T) {
	cfg := Config{APIRoot: "http://localhost:8080", RequestTimeout: time.Second}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	cfg.APIRoot = "not a url"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected invalid API root to be rejected")
	}

	cfg.APIRoot = "http://localhost:8080"
	cfg.RequestTimeout = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected non-positive timeout to be rejected")
	}
}

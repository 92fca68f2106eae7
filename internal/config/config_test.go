package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Docker.Binary != "docker" {
		t.Errorf("expected binary docker, got %q", cfg.Docker.Binary)
	}
	if cfg.Docker.Timeout != 10*time.Second {
		t.Errorf("expected timeout 10s, got %v", cfg.Docker.Timeout)
	}
	if len(cfg.Probe.Shells) != 3 {
		t.Fatalf("expected 3 shell candidates, got %d", len(cfg.Probe.Shells))
	}
	if cfg.Probe.Shells[0].Name != "sh" || cfg.Probe.Shells[0].Path != "/bin/sh" {
		t.Errorf("expected sh:/bin/sh first, got %s:%s", cfg.Probe.Shells[0].Name, cfg.Probe.Shells[0].Path)
	}
	if cfg.Probe.Fallback != "sh" {
		t.Errorf("expected fallback sh, got %q", cfg.Probe.Fallback)
	}
	if cfg.Probe.CacheTTL != 5*time.Minute {
		t.Errorf("expected cache TTL 5m, got %v", cfg.Probe.CacheTTL)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("expected log level warn, got %q", cfg.Log.Level)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `docker:
  binary: podman
  timeout: 3s

probe:
  fallback: bash
  cache_ttl: 1m

log:
  level: debug
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Docker.Binary != "podman" {
		t.Errorf("expected binary podman, got %q", cfg.Docker.Binary)
	}
	if cfg.Docker.Timeout != 3*time.Second {
		t.Errorf("expected timeout 3s, got %v", cfg.Docker.Timeout)
	}
	if cfg.Probe.Fallback != "bash" {
		t.Errorf("expected fallback bash, got %q", cfg.Probe.Fallback)
	}
	// Unset fields still get defaults.
	if len(cfg.Probe.Shells) != 3 {
		t.Errorf("expected default shells, got %d candidates", len(cfg.Probe.Shells))
	}
	if cfg.Probe.Timeout != 30*time.Second {
		t.Errorf("expected default probe timeout, got %v", cfg.Probe.Timeout)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected log level debug, got %q", cfg.Log.Level)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("docker: ["), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid yaml")
	}
}

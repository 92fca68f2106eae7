package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Docker Docker `yaml:"docker"`
	Probe  Probe  `yaml:"probe"`
	Log    Log    `yaml:"log"`
}

type Docker struct {
	Binary  string        `yaml:"binary"`
	Timeout time.Duration `yaml:"timeout"`
}

// Shell is one interactive-shell candidate checked inside an image.
// Candidates are tried in declaration order.
type Shell struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

type Probe struct {
	Shells   []Shell       `yaml:"shells"`
	Fallback string        `yaml:"fallback"`
	CacheTTL time.Duration `yaml:"cache_ttl"`
	Timeout  time.Duration `yaml:"timeout"`
}

type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DefaultPath is where Load looks when no --config flag is given.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skiff", "config.yaml")
}

// Default returns the built-in configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Docker.Binary == "" {
		cfg.Docker.Binary = "docker"
	}
	if cfg.Docker.Timeout == 0 {
		cfg.Docker.Timeout = 10 * time.Second
	}

	if len(cfg.Probe.Shells) == 0 {
		cfg.Probe.Shells = []Shell{
			{Name: "sh", Path: "/bin/sh"},
			{Name: "bash", Path: "/bin/bash"},
			{Name: "zsh", Path: "/bin/zsh"},
		}
	}
	if cfg.Probe.Fallback == "" {
		cfg.Probe.Fallback = "sh"
	}
	if cfg.Probe.CacheTTL == 0 {
		cfg.Probe.CacheTTL = 5 * time.Minute
	}
	if cfg.Probe.Timeout == 0 {
		cfg.Probe.Timeout = 30 * time.Second
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "warn"
	}
}

package config

import (
	"fmt"
	"path"
)

func validate(cfg *Config) error {
	if cfg.Docker.Binary == "" {
		return fmt.Errorf("config: docker.binary must not be empty")
	}
	if cfg.Docker.Timeout < 0 {
		return fmt.Errorf("config: docker.timeout must not be negative")
	}

	if len(cfg.Probe.Shells) == 0 {
		return fmt.Errorf("config: probe.shells must not be empty")
	}
	names := make(map[string]bool)
	for i, sh := range cfg.Probe.Shells {
		if sh.Name == "" {
			return fmt.Errorf("config: probe.shells[%d] missing name", i)
		}
		if !path.IsAbs(sh.Path) {
			return fmt.Errorf("config: probe.shells[%d] (%s) path %q is not absolute", i, sh.Name, sh.Path)
		}
		if names[sh.Name] {
			return fmt.Errorf("config: duplicate shell candidate %q", sh.Name)
		}
		names[sh.Name] = true
	}
	if cfg.Probe.Fallback == "" {
		return fmt.Errorf("config: probe.fallback must not be empty")
	}
	if cfg.Probe.CacheTTL < 0 {
		return fmt.Errorf("config: probe.cache_ttl must not be negative")
	}
	if cfg.Probe.Timeout < 0 {
		return fmt.Errorf("config: probe.timeout must not be negative")
	}

	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("config: unknown log.level %q", cfg.Log.Level)
	}

	return nil
}

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"skiff/internal/config"
	"skiff/internal/dockercli"
	"skiff/internal/listing"
	"skiff/internal/picker"
	"skiff/internal/probe"
)

var version = "dev"

var (
	configPath string
	logLevel   string
	dockerBin  string
)

func main() {
	root := &cobra.Command{
		Use:   "skiff",
		Short: "skiff — browse Docker containers, volumes, and images in a fuzzy picker",
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.skiff/config.yaml)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&dockerBin, "docker", "", "docker binary to invoke")

	root.AddCommand(
		containersCmd(),
		volumesCmd(),
		imagesCmd(),
		attachCmd(),
		configValidateCmd(),
		initCmd(),
		versionCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the effective config: the --config file if given, the
// default file if one exists, and built-in defaults otherwise. Flags win
// over file values.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	switch {
	case configPath != "":
		c, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = c
	default:
		path := config.DefaultPath()
		if _, err := os.Stat(path); err == nil {
			c, err := config.Load(path)
			if err != nil {
				return nil, err
			}
			cfg = c
		} else {
			cfg = config.Default()
		}
	}

	if dockerBin != "" {
		cfg.Docker.Binary = dockerBin
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	return cfg, nil
}

// newLogger builds the diagnostic logger. Picker sessions own the terminal,
// so interactive commands log to a file instead of stderr.
func newLogger(cfg *config.Config, interactive bool) *slog.Logger {
	var level slog.Level
	switch cfg.Log.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	var w io.Writer = os.Stderr
	if interactive {
		path := cfg.Log.File
		if path == "" {
			home, err := os.UserHomeDir()
			if err == nil {
				path = filepath.Join(home, ".skiff", "skiff.log")
			}
		}
		w = io.Discard
		if path != "" {
			if err := os.MkdirAll(filepath.Dir(path), 0755); err == nil {
				if f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); err == nil {
					w = f
				}
			}
		}
	} else if cfg.Log.File != "" {
		if f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); err == nil {
			w = f
		}
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

func containersCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "containers",
		Aliases: []string{"ps"},
		Short:   "Pick through running containers",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := newLogger(cfg, true)
			runner := dockercli.New(cfg.Docker.Binary, cfg.Docker.Timeout, logger)

			_, _, err = picker.Run(picker.Source{
				Title: "Containers",
				Load: func(ctx context.Context) []picker.Entry {
					return listing.Containers(ctx, runner)
				},
				Preview: listing.Preview,
			})
			return err
		},
	}
}

func volumesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "volumes",
		Short: "Pick through volumes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := newLogger(cfg, true)
			runner := dockercli.New(cfg.Docker.Binary, cfg.Docker.Timeout, logger)

			_, _, err = picker.Run(picker.Source{
				Title: "Volumes",
				Load: func(ctx context.Context) []picker.Entry {
					return listing.Volumes(ctx, runner)
				},
				Preview: listing.Preview,
			})
			return err
		},
	}
}

func imagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "images",
		Short: "Pick an image and open a shell inside it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := newLogger(cfg, true)
			runner := dockercli.New(cfg.Docker.Binary, cfg.Docker.Timeout, logger)

			sel, ok, err := picker.Run(picker.Source{
				Title: "Images",
				Load: func(ctx context.Context) []picker.Entry {
					return listing.Images(ctx, runner)
				},
				Preview: listing.Preview,
			})
			if err != nil || !ok {
				return err
			}

			img, ok := sel.Value.(listing.Image)
			if !ok {
				return nil
			}
			return attachShell(cfg, logger, img.Ref())
		},
	}
}

func attachCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "attach <image>",
		Short: "Open an interactive shell in an image without the picker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := newLogger(cfg, false)
			return attachShell(cfg, logger, args[0])
		},
	}
}

// attachShell probes the image for an interactive shell and hands the
// terminal to `docker run -it`.
func attachShell(cfg *config.Config, logger *slog.Logger, ref string) error {
	if ref == "" {
		return fmt.Errorf("no image reference to attach to")
	}

	// Probe runs may pull the image; give them their own, longer bound.
	probeRunner := dockercli.New(cfg.Docker.Binary, cfg.Probe.Timeout, logger)
	prober := probe.New(probeRunner, cfg.Probe, logger)

	res := prober.Probe(context.Background(), ref)
	if !res.Found {
		fmt.Fprintf(os.Stderr, "warning: no shell detected in %s, trying %q\n", ref, res.Shell)
	}

	runner := dockercli.New(cfg.Docker.Binary, 0, logger)
	return runner.RunInteractive("run", "-it", ref, res.Shell)
}

func configValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config-validate <file>",
		Short: "Validate a config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := config.Load(args[0]); err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}
			fmt.Println("OK")
			return nil
		},
	}
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config file to ~/.skiff/config.yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultPath()
			if path == "" {
				return fmt.Errorf("could not determine home directory")
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return err
			}

			template := `docker:
  binary: docker
  timeout: 10s

probe:
  shells:
    - name: sh
      path: /bin/sh
    - name: bash
      path: /bin/bash
    - name: zsh
      path: /bin/zsh
  fallback: sh
  cache_ttl: 5m
  timeout: 30s

log:
  level: warn
  # file: /tmp/skiff.log
`
			if err := os.WriteFile(path, []byte(template), 0644); err != nil {
				return err
			}
			fmt.Printf("Created %s\n", path)
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the skiff version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("skiff " + version)
		},
	}
}

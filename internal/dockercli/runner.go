// Package dockercli shells out to the docker binary. It never talks to the
// daemon directly; every query goes through the CLI with JSON line output.
package dockercli

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"
)

type Runner struct {
	bin     string
	timeout time.Duration
	logger  *slog.Logger
}

// New creates a runner for the given docker binary. timeout bounds each
// non-interactive invocation; 0 disables the bound.
func New(bin string, timeout time.Duration, logger *slog.Logger) *Runner {
	return &Runner{
		bin:     bin,
		timeout: timeout,
		logger:  logger.With("component", "dockercli"),
	}
}

// Available reports whether the docker binary can be found on PATH.
func (r *Runner) Available() bool {
	_, err := exec.LookPath(r.bin)
	return err == nil
}

// Run executes the docker binary with the given arguments plus
// "--format json" and returns stdout split into lines. A missing binary,
// unreachable daemon, timeout, or non-zero exit all degrade to whatever
// lines were produced before the failure; the error is only logged.
func (r *Runner) Run(ctx context.Context, args ...string) []string {
	full := make([]string, 0, len(args)+2)
	full = append(full, args...)
	full = append(full, "--format", "json")
	return r.capture(ctx, full)
}

// Output is Run without the forced format flag, for subcommands whose
// output is not JSON (the shell probe's throwaway container run).
func (r *Runner) Output(ctx context.Context, args ...string) []string {
	return r.capture(ctx, args)
}

func (r *Runner) capture(ctx context.Context, args []string) []string {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		r.logger.Warn("docker command failed",
			"args", strings.Join(args, " "),
			"error", err,
			"stderr", tail(stderr.String()),
		)
	}

	return splitLines(stdout.String())
}

// RunInteractive executes the docker binary with inherited stdio, for
// attaching an interactive shell. The call blocks until the session ends.
func (r *Runner) RunInteractive(args ...string) error {
	cmd := exec.Command(r.bin, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// tail returns the last portion of stderr so log lines stay bounded.
func tail(s string) string {
	s = strings.TrimSpace(s)
	const max = 300
	if len(s) <= max {
		return s
	}
	return "..." + s[len(s)-max:]
}

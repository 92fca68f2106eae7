// Package probe detects an interactive shell inside a container image by
// running a throwaway container and testing well-known shell paths.
package probe

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"skiff/internal/config"
)

// Runner is the subset of dockercli.Runner the prober needs.
type Runner interface {
	Output(ctx context.Context, args ...string) []string
}

// Result is the outcome of a probe. Found distinguishes a detected shell
// from the fallback used when the probe saw nothing — a daemon failure and
// an image with no shell look the same from here.
type Result struct {
	Shell string
	Found bool
}

type cached struct {
	result  Result
	expires time.Time
}

type Prober struct {
	runner   Runner
	shells   []config.Shell
	fallback string
	ttl      time.Duration
	logger   *slog.Logger

	mu    sync.Mutex
	cache map[string]cached
	now   func() time.Time
}

func New(runner Runner, cfg config.Probe, logger *slog.Logger) *Prober {
	return &Prober{
		runner:   runner,
		shells:   cfg.Shells,
		fallback: cfg.Fallback,
		ttl:      cfg.CacheTTL,
		logger:   logger.With("component", "probe"),
		cache:    make(map[string]cached),
		now:      time.Now,
	}
}

// Probe returns the preferred interactive shell available in the image.
// Candidates are tried in configured order; the first one whose path shows
// up in the throwaway container's check output wins. Repeated probes of the
// same image within the cache TTL skip the container run.
func (p *Prober) Probe(ctx context.Context, image string) Result {
	if res, ok := p.lookup(image); ok {
		return res
	}

	args := []string{"run", "--rm", "--name", "skiff-probe-" + uuid.NewString()[:8], image, "find"}
	for _, sh := range p.shells {
		args = append(args, sh.Path)
	}
	args = append(args, "-maxdepth", "0", "-type", "f", "-executable")

	present := make(map[string]bool)
	for _, line := range p.runner.Output(ctx, args...) {
		present[strings.TrimSpace(line)] = true
	}

	for _, sh := range p.shells {
		if present[sh.Path] {
			res := Result{Shell: sh.Name, Found: true}
			p.store(image, res)
			return res
		}
	}

	// Not cached: a transient daemon failure should not pin the fallback
	// for the whole TTL.
	p.logger.Warn("no interactive shell found in image, using fallback",
		"image", image,
		"fallback", p.fallback,
	)
	return Result{Shell: p.fallback, Found: false}
}

func (p *Prober) lookup(image string) (Result, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	c, ok := p.cache[image]
	if !ok || p.now().After(c.expires) {
		return Result{}, false
	}
	return c.result, true
}

func (p *Prober) store(image string, res Result) {
	if p.ttl <= 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cache[image] = cached{result: res, expires: p.now().Add(p.ttl)}
}

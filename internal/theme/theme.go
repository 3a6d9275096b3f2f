// Package theme owns the light/dark preference. The provider combines the
// host (terminal) preference with an explicit user choice persisted in the
// preference store; once the user picks a theme, host changes are ignored
// until they ask to follow the system again.
package theme

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/zhubert/manus/internal/logger"
	"github.com/zhubert/manus/internal/prefs"
)

// Theme is the colour scheme.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Parse returns the theme named by s. Anything but "light" or "dark" is invalid.
func Parse(s string) (Theme, bool) {
	switch Theme(s) {
	case Light, Dark:
		return Theme(s), true
	}
	return "", false
}

// Opposite returns the other theme.
func (t Theme) Opposite() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// IsDark reports whether t is the dark theme.
func (t Theme) IsDark() bool {
	return t == Dark
}

// Option configures a Provider.
type Option func(*Provider)

// WithLogger overrides the provider's logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Provider) { p.log = l }
}

// Provider holds the active theme. It is safe for concurrent use.
type Provider struct {
	store prefs.Store
	log   *slog.Logger

	mu        sync.RWMutex
	current   Theme
	system    Theme
	explicit  bool
	listeners []func(Theme)
}

// NewProvider returns a provider showing the system theme until Load runs.
func NewProvider(store prefs.Store, system Theme, opts ...Option) *Provider {
	if _, ok := Parse(string(system)); !ok {
		system = Light
	}
	p := &Provider{
		store:   store,
		log:     logger.WithComponent("theme"),
		current: system,
		system:  system,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Load reads the persisted preference. A valid stored value wins over the
// system theme; a read failure is logged and the system theme is kept.
func (p *Provider) Load(ctx context.Context) {
	stored, ok, _ := p.readStored(ctx)

	p.mu.Lock()
	before := p.current
	if ok {
		p.current = stored
		p.explicit = true
	} else {
		p.current = p.system
		p.explicit = false
	}
	after := p.current
	p.mu.Unlock()

	p.notifyIfChanged(before, after)
}

// Theme returns the active theme.
func (p *Provider) Theme() Theme {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// IsDark reports whether the active theme is dark.
func (p *Provider) IsDark() bool {
	return p.Theme().IsDark()
}

// IsExplicit reports whether the active theme came from a user choice.
func (p *Provider) IsExplicit() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.explicit
}

// System returns the last reported host theme.
func (p *Provider) System() Theme {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.system
}

// SetTheme persists t and makes it active. If the preference cannot be
// saved the failure is logged and the current theme is kept.
func (p *Provider) SetTheme(ctx context.Context, t Theme) {
	if _, ok := Parse(string(t)); !ok {
		p.log.Warn("ignoring invalid theme", "theme", string(t))
		return
	}
	if err := p.store.Set(ctx, prefs.KeyTheme, string(t)); err != nil {
		p.log.Error("failed to persist theme", "theme", string(t), "error", err)
		return
	}

	p.mu.Lock()
	before := p.current
	p.current = t
	p.explicit = true
	p.mu.Unlock()

	p.notifyIfChanged(before, t)
}

// Toggle switches to the opposite theme.
func (p *Provider) Toggle(ctx context.Context) {
	p.SetTheme(ctx, p.Theme().Opposite())
}

// SystemChanged records a new host theme. The store is re-read every time:
// a persisted preference wins, otherwise the host theme is followed. When
// the store cannot be read the active theme is left alone.
func (p *Provider) SystemChanged(ctx context.Context, t Theme) {
	if _, ok := Parse(string(t)); !ok {
		return
	}
	persisted, stored, err := p.readStored(ctx)

	p.mu.Lock()
	p.system = t
	before := p.current
	switch {
	case err != nil:
	case stored:
		p.current = persisted
		p.explicit = true
	default:
		p.current = t
		p.explicit = false
	}
	after := p.current
	p.mu.Unlock()

	p.notifyIfChanged(before, after)
}

// FollowSystem forgets the explicit preference and reverts to the host theme.
// Nothing changes if the stored preference cannot be removed.
func (p *Provider) FollowSystem(ctx context.Context) {
	if err := p.store.Delete(ctx, prefs.KeyTheme); err != nil {
		p.log.Error("failed to clear theme preference", "error", err)
		return
	}

	p.mu.Lock()
	before := p.current
	p.current = p.system
	p.explicit = false
	after := p.current
	p.mu.Unlock()

	p.notifyIfChanged(before, after)
}

// Subscribe registers fn to be called after every theme change.
func (p *Provider) Subscribe(fn func(Theme)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, fn)
}

func (p *Provider) readStored(ctx context.Context) (Theme, bool, error) {
	v, ok, err := p.store.Get(ctx, prefs.KeyTheme)
	if err != nil {
		p.log.Error("failed to read theme preference", "error", err)
		return "", false, err
	}
	if !ok {
		return "", false, nil
	}
	t, valid := Parse(v)
	if !valid {
		p.log.Warn("ignoring invalid stored theme", "value", v)
	}
	return t, valid, nil
}

func (p *Provider) notifyIfChanged(before, after Theme) {
	if before == after {
		return
	}
	p.mu.RLock()
	listeners := append([]func(Theme){}, p.listeners...)
	p.mu.RUnlock()
	for _, fn := range listeners {
		fn(after)
	}
}

// DetectSystem guesses the terminal background from COLORFGBG ("fg;bg"),
// defaulting to dark. The TUI refines this with a background colour query.
func DetectSystem() Theme {
	v := os.Getenv("COLORFGBG")
	if v == "" {
		return Dark
	}
	parts := strings.Split(v, ";")
	bg, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return Dark
	}
	// ANSI colours 7 and 9-15 are light backgrounds.
	if bg == 7 || (bg >= 9 && bg <= 15) {
		return Light
	}
	return Dark
}

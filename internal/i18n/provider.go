package i18n

import (
	"context"
	"log/slog"
	"sync"

	"github.com/zhubert/manus/internal/logger"
	"github.com/zhubert/manus/internal/prefs"
)

// Translator resolves translation keys against the active locale.
type Translator interface {
	T(key string, params ...Params) string
}

// Option configures a Provider.
type Option func(*Provider)

// WithLogger overrides the provider's logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Provider) { p.log = l }
}

// Provider holds the active locale. It is safe for concurrent use.
type Provider struct {
	store   prefs.Store
	catalog *Catalog
	log     *slog.Logger

	mu        sync.RWMutex
	locale    Locale
	device    Locale
	listeners []func(Locale, Direction)
}

// NewProvider returns a provider using the device locale until Load runs.
func NewProvider(store prefs.Store, catalog *Catalog, device Locale, opts ...Option) *Provider {
	if _, ok := ParseLocale(string(device)); !ok {
		device = Default
	}
	p := &Provider{
		store:   store,
		catalog: catalog,
		log:     logger.WithComponent("i18n"),
		locale:  device,
		device:  device,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Load applies the persisted locale, if any. Stored beats device; device
// beats the English default. Read failures keep the current locale.
func (p *Provider) Load(ctx context.Context) {
	v, ok, err := p.store.Get(ctx, prefs.KeyLocale)
	if err != nil {
		p.log.Error("failed to read locale preference", "error", err)
		return
	}
	next := p.device
	if ok {
		if l, valid := ParseLocale(v); valid {
			next = l
		} else {
			p.log.Warn("ignoring invalid stored locale", "value", v)
		}
	}
	p.apply(next)
}

// SetLocale persists l and makes it active. Subscribers are told the new
// direction so the whole screen tree can re-lay out. If the choice cannot
// be saved the failure is logged and the current locale is kept.
func (p *Provider) SetLocale(ctx context.Context, l Locale) {
	if _, ok := ParseLocale(string(l)); !ok {
		p.log.Warn("ignoring unsupported locale", "locale", string(l))
		return
	}
	if err := p.store.Set(ctx, prefs.KeyLocale, string(l)); err != nil {
		p.log.Error("failed to persist locale", "locale", string(l), "error", err)
		return
	}
	p.apply(l)
}

// Locale returns the active locale.
func (p *Provider) Locale() Locale {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.locale
}

// Direction returns the layout direction of the active locale.
func (p *Provider) Direction() Direction {
	return p.Locale().Direction()
}

// T translates key in the active locale. Only the first Params is used.
func (p *Provider) T(key string, params ...Params) string {
	var ps Params
	if len(params) > 0 {
		ps = params[0]
	}
	return p.catalog.Lookup(p.Locale(), key, ps)
}

// Subscribe registers fn to be called after every locale change.
func (p *Provider) Subscribe(fn func(Locale, Direction)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, fn)
}

func (p *Provider) apply(l Locale) {
	p.mu.Lock()
	changed := p.locale != l
	p.locale = l
	listeners := append([]func(Locale, Direction){}, p.listeners...)
	p.mu.Unlock()

	if !changed {
		return
	}
	p.log.Debug("locale changed", "locale", string(l), "direction", l.Direction().String())
	for _, fn := range listeners {
		fn(l, l.Direction())
	}
}

// Static is a Translator pinned to one locale, for the CLI and tests.
type Static struct {
	Catalog *Catalog
	Locale  Locale
}

func (s Static) T(key string, params ...Params) string {
	var ps Params
	if len(params) > 0 {
		ps = params[0]
	}
	return s.Catalog.Lookup(s.Locale, key, ps)
}

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/zhubert/manus/internal/config"
	"github.com/zhubert/manus/internal/i18n"
	"github.com/zhubert/manus/internal/logger"
	"github.com/zhubert/manus/internal/prefs"
	"github.com/zhubert/manus/internal/theme"
)

// environment is what every command needs: the loaded config, the
// preference store and the providers reading from it.
type environment struct {
	cfg     *config.Config
	store   prefs.Store
	catalog *i18n.Catalog
	locale  *i18n.Provider
	themes  *theme.Provider
}

func openEnvironment(ctx context.Context) (*environment, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	if err := logger.Init(cfg.LogPath()); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	catalog, err := i18n.LoadCatalog()
	if err != nil {
		logger.Close()
		return nil, fmt.Errorf("error loading translations: %w", err)
	}

	store, err := prefs.Open(cfg)
	if err != nil {
		logger.Close()
		return nil, fmt.Errorf("error opening preferences: %w", err)
	}

	env := &environment{
		cfg:     cfg,
		store:   store,
		catalog: catalog,
		locale:  i18n.NewProvider(store, catalog, i18n.DetectDeviceLocale(), i18n.WithLogger(logger.WithComponent("i18n"))),
		themes:  theme.NewProvider(store, theme.DetectSystem(), theme.WithLogger(logger.WithComponent("theme"))),
	}
	env.locale.Load(ctx)
	env.themes.Load(ctx)

	logger.WithComponent("cmd").Debug("environment ready",
		"config", cfg.FileUsed(),
		"store", cfg.StorePath(),
		"locale", string(env.locale.Locale()),
		"theme", string(env.themes.Theme()),
	)
	return env, nil
}

// Close releases the store and the log file.
func (e *environment) Close() {
	if err := prefs.Close(e.store); err != nil {
		logger.WithComponent("cmd").Warn("failed to close preferences", "error", err)
	}
	_ = logger.Close()
}

// translator returns the active translator, or one pinned to the locale
// named by override.
func (e *environment) translator(override string) (i18n.Translator, i18n.Direction, error) {
	if override == "" {
		return e.locale, e.locale.Direction(), nil
	}
	l, ok := i18n.ParseLocale(override)
	if !ok {
		return nil, i18n.LTR, fmt.Errorf("unknown locale %q (want en or ar)", override)
	}
	return i18n.Static{Catalog: e.catalog, Locale: l}, l.Direction(), nil
}

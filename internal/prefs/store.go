// Package prefs persists user preferences (theme, locale and the profile
// toggles) in a small key/value store.
package prefs

import (
	"context"

	"github.com/zhubert/manus/internal/config"
	perrors "github.com/zhubert/manus/internal/errors"
)

// Known preference keys
const (
	KeyTheme         = "appTheme"
	KeyLocale        = "appLocale"
	KeyNotifications = "notifications"
	KeyAutoSync      = "autoSync"
)

// Keys lists every key the application reads, in display order.
var Keys = []string{KeyTheme, KeyLocale, KeyNotifications, KeyAutoSync}

// Store is an asynchronous string key/value store. A missing key is not an
// error: Get reports it with ok == false.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Closer is implemented by stores holding OS resources.
type Closer interface {
	Close() error
}

// Open returns the store selected by cfg.
func Open(cfg *config.Config) (Store, error) {
	path := cfg.StorePath()
	switch cfg.Store.Backend {
	case config.BackendSQLite:
		return OpenSQLite(path)
	case config.BackendFile, "":
		return NewFileStore(path), nil
	default:
		return nil, perrors.ConfigInvalid("unknown store backend " + cfg.Store.Backend)
	}
}

// Close releases the store if it holds resources.
func Close(s Store) error {
	if c, ok := s.(Closer); ok {
		return c.Close()
	}
	return nil
}

// Bool reads a boolean toggle, returning def when absent or unreadable.
func Bool(ctx context.Context, s Store, key string, def bool) bool {
	v, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return def
	}
	switch v {
	case "true":
		return true
	case "false":
		return false
	}
	return def
}

// SetBool writes a boolean toggle.
func SetBool(ctx context.Context, s Store, key string, v bool) error {
	if v {
		return s.Set(ctx, key, "true")
	}
	return s.Set(ctx, key, "false")
}

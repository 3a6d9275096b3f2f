package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	perrors "github.com/zhubert/manus/internal/errors"
)

// Store backends
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config holds the application configuration
type Config struct {
	Store StoreConfig `mapstructure:"store"`
	Chat  ChatConfig  `mapstructure:"chat"`
	Tasks TasksConfig `mapstructure:"tasks"`
	Log   LogConfig   `mapstructure:"log"`

	dir      string
	filePath string
}

// StoreConfig selects where preferences (theme, locale, profile toggles) live.
type StoreConfig struct {
	Backend string `mapstructure:"backend"`
	Path    string `mapstructure:"path"`
}

// ChatConfig tunes the simulated assistant.
type ChatConfig struct {
	ReplyDelayMin time.Duration `mapstructure:"reply_delay_min"`
	ReplyDelayMax time.Duration `mapstructure:"reply_delay_max"`
	MaxInput      int           `mapstructure:"max_input"` // grapheme clusters
}

// TasksConfig tunes the task store.
type TasksConfig struct {
	RefreshIncrement int  `mapstructure:"refresh_increment"`
	StrictFailure    bool `mapstructure:"strict_failure"` // forbid completed -> failed
}

// LogConfig holds logging settings.
type LogConfig struct {
	Path string `mapstructure:"path"`
}

// Dir returns the path to the config directory, honoring XDG_CONFIG_HOME.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "manus"), nil
}

// Default returns a config populated with defaults rooted at dir.
func Default(dir string) *Config {
	return &Config{
		Store: StoreConfig{Backend: BackendFile},
		Chat: ChatConfig{
			ReplyDelayMin: 1500 * time.Millisecond,
			ReplyDelayMax: 2500 * time.Millisecond,
			MaxInput:      500,
		},
		Tasks: TasksConfig{RefreshIncrement: 5},
		dir:   dir,
	}
}

// Load reads configuration from defaults, an optional TOML file and the
// environment (prefix MANUS_, e.g. MANUS_CHAT_REPLY_DELAY_MIN=500ms).
// An explicit path must exist; the default location is optional.
func Load(path string) (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, perrors.ConfigLoadFailed("user config dir", err)
	}
	defaults := Default(dir)

	v := viper.New()
	v.SetDefault("store.backend", defaults.Store.Backend)
	v.SetDefault("store.path", "")
	v.SetDefault("chat.reply_delay_min", defaults.Chat.ReplyDelayMin)
	v.SetDefault("chat.reply_delay_max", defaults.Chat.ReplyDelayMax)
	v.SetDefault("chat.max_input", defaults.Chat.MaxInput)
	v.SetDefault("tasks.refresh_increment", defaults.Tasks.RefreshIncrement)
	v.SetDefault("tasks.strict_failure", false)
	v.SetDefault("log.path", "")

	v.SetConfigType("toml")
	if path == "" {
		path = os.Getenv("MANUS_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(dir)
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("MANUS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return nil, perrors.ConfigLoadFailed(path, err)
		}
	}

	cfg := &Config{dir: dir, filePath: v.ConfigFileUsed()}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, perrors.ConfigLoadFailed(path, err)
	}
	cfg.Store.Backend = strings.ToLower(strings.TrimSpace(cfg.Store.Backend))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the config is internally consistent.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendFile, BackendSQLite:
	default:
		return perrors.ConfigInvalid("unknown store backend " + quote(c.Store.Backend))
	}
	if c.Chat.ReplyDelayMin < 0 {
		return perrors.ConfigInvalid("chat.reply_delay_min must not be negative")
	}
	if c.Chat.ReplyDelayMax < c.Chat.ReplyDelayMin {
		return perrors.ConfigInvalid("chat.reply_delay_max must not be below chat.reply_delay_min")
	}
	if c.Chat.MaxInput <= 0 {
		return perrors.ConfigInvalid("chat.max_input must be positive")
	}
	if c.Tasks.RefreshIncrement <= 0 || c.Tasks.RefreshIncrement > 100 {
		return perrors.ConfigInvalid("tasks.refresh_increment must be between 1 and 100")
	}
	return nil
}

// FileUsed returns the config file that was read, or "" when running on defaults.
func (c *Config) FileUsed() string {
	return c.filePath
}

// StorePath returns the preference store location, defaulting by backend.
func (c *Config) StorePath() string {
	if c.Store.Path != "" {
		return c.Store.Path
	}
	if c.Store.Backend == BackendSQLite {
		return filepath.Join(c.dir, "prefs.db")
	}
	return filepath.Join(c.dir, "prefs.json")
}

// LogPath returns the log file location.
func (c *Config) LogPath() string {
	if c.Log.Path != "" {
		return c.Log.Path
	}
	return filepath.Join(c.dir, "manus.log")
}

func quote(s string) string {
	return "\"" + s + "\""
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Validation errors.
var (
	ErrInvalidEOFPolicy = errors.New("invalid eof_policy (want \"ignore\" or \"delete-char\")")
	ErrInvalidSize      = errors.New("size must be positive")
	ErrInvalidLogLevel  = errors.New("invalid log level")
)

// EOF policy names accepted in the [editor] section.
const (
	EOFPolicyIgnore     = "ignore"
	EOFPolicyDeleteChar = "delete-char"
)

// Config is the full keyline configuration.
type Config struct {
	Editor  EditorConfig  `toml:"editor"`
	History HistoryConfig `toml:"history"`
	Log     LogConfig     `toml:"log"`
}

// EditorConfig controls editing policy.
type EditorConfig struct {
	// MaxLineLength limits the line length in runes.
	MaxLineLength int `toml:"max_line_length"`

	// HistorySize is the capacity of the in-memory history ring.
	HistorySize int `toml:"history_size"`

	// EOFPolicy is the Ctrl-D behavior on a non-empty line:
	// "ignore" or "delete-char".
	EOFPolicy string `toml:"eof_policy"`
}

// HistoryConfig controls the optional on-disk line store.
type HistoryConfig struct {
	// Persist enables loading and saving history across runs.
	Persist bool `toml:"persist"`

	// Path overrides the default history database location.
	Path string `toml:"path"`
}

// LogConfig controls the application logger.
type LogConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `toml:"level"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Editor: EditorConfig{
			MaxLineLength: 4096,
			HistorySize:   100,
			EOFPolicy:     EOFPolicyIgnore,
		},
		History: HistoryConfig{
			Persist: false,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the configuration at path. A missing file is not an error;
// the defaults are returned. Fields absent from the file keep their
// default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values without touching the filesystem.
func (c Config) Validate() error {
	if c.Editor.MaxLineLength <= 0 || c.Editor.HistorySize <= 0 {
		return ErrInvalidSize
	}

	switch c.Editor.EOFPolicy {
	case EOFPolicyIgnore, EOFPolicyDeleteChar:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidEOFPolicy, c.Editor.EOFPolicy)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level)
	}
	return nil
}

// DefaultPath returns the conventional configuration file location,
// or an empty string when no user config directory exists.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "keyline", "config.toml")
}

// DefaultHistoryPath returns the conventional history database
// location, or an empty string when the home directory is unknown.
func DefaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "share", "keyline", "history.db")
}

// HistoryPath returns the configured history path, falling back to the
// default location.
func (c Config) HistoryPath() string {
	if c.History.Path != "" {
		return c.History.Path
	}
	return DefaultHistoryPath()
}

package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Changelog backends.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
)

// EnvPath names the environment variable that overrides the config path.
const EnvPath = "LEDIT_CONFIG"

// Config holds all application configuration
type Config struct {
	Changelog ChangelogConfig `toml:"changelog"`
	Output    OutputConfig    `toml:"output"`
	Log       LogConfig       `toml:"log"`
}

// ChangelogConfig selects where operations are recorded.
type ChangelogConfig struct {
	Backend  string `toml:"backend"`  // "file" or "memory"
	Capacity int    `toml:"capacity"` // memory backend only
}

// OutputConfig controls terminal output.
type OutputConfig struct {
	Color          bool   `toml:"color"`
	HighlightStyle string `toml:"highlight_style"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Changelog: ChangelogConfig{
			Backend:  BackendFile,
			Capacity: 1024,
		},
		Output: OutputConfig{
			Color:          true,
			HighlightStyle: "monokai",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load reads the config at path, or at the default location when path is
// empty. A missing file at the default location yields the defaults; a
// missing file named by path is an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = getConfigPath()
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values that the TOML decoder cannot.
func (c *Config) Validate() error {
	switch c.Changelog.Backend {
	case BackendFile, BackendMemory:
	default:
		return fmt.Errorf("changelog.backend must be %q or %q, got %q", BackendFile, BackendMemory, c.Changelog.Backend)
	}
	if c.Changelog.Capacity <= 0 {
		return fmt.Errorf("changelog.capacity must be positive, got %d", c.Changelog.Capacity)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelWarn, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// getConfigPath returns the config file path
func getConfigPath() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}

	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ledit", "config.toml")
	}

	// Fall back to ~/.config
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".config", "ledit", "config.toml")
}

// GetConfigPath exports the config path for user reference
func GetConfigPath() string {
	return getConfigPath()
}

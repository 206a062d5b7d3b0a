package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config holds application-level configuration.
type Config struct {
	DataDir         string `toml:"data_dir"`          // session file, sqlite db, logs
	Store           string `toml:"store"`             // "memory" or "sqlite"
	BaseURL         string `toml:"base_url"`          // share-link origin
	InitialPageSize int    `toml:"initial_page_size"` // first feed page
	PageSize        int    `toml:"page_size"`         // subsequent pages
	NetworkDelayMS  int    `toml:"network_delay_ms"`  // simulated fetch latency
	AllowAutoplay   bool   `toml:"allow_autoplay"`    // unmuted autoplay before first gesture
	LogLevel        string `toml:"log_level"`
}

const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// Default returns the built-in configuration.
func Default() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("cannot determine home directory: %w", err)
	}
	return Config{
		DataDir:         filepath.Join(home, ".local", "share", "echochamber"),
		Store:           StoreMemory,
		BaseURL:         "https://echochamber.app",
		InitialPageSize: 10,
		PageSize:        5,
		NetworkDelayMS:  500,
		AllowAutoplay:   false,
		LogLevel:        "info",
	}, nil
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "echochamber", "echochamber.toml"), nil
}

// Load reads configuration from the given TOML file, falling back to
// defaults when the file is absent, then applies environment overrides:
//
//	ECHOCHAMBER_DATA_DIR  — data directory
//	ECHOCHAMBER_STORE     — "memory" or "sqlite"
//	ECHOCHAMBER_BASE_URL  — origin used for share links
//	ECHOCHAMBER_LOG_LEVEL — debug, info, warn, error
//
// An empty path means the default location.
func Load(path string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}

	if path == "" {
		if path = os.Getenv("ECHOCHAMBER_CONFIG"); path == "" {
			if path, err = DefaultPath(); err != nil {
				return Config{}, err
			}
		}
	}

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// Missing file means defaults.
	default:
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	if v := os.Getenv("ECHOCHAMBER_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("ECHOCHAMBER_STORE"); v != "" {
		cfg.Store = v
	}
	if v := os.Getenv("ECHOCHAMBER_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("ECHOCHAMBER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Store)) {
	case StoreMemory, StoreSQLite:
	default:
		return fmt.Errorf("invalid store %q: must be %q or %q", c.Store, StoreMemory, StoreSQLite)
	}
	parsed, err := url.Parse(c.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid base_url %q: must be an absolute URL", c.BaseURL)
	}
	if c.InitialPageSize < 1 || c.PageSize < 1 {
		return fmt.Errorf("page sizes must be positive")
	}
	if c.NetworkDelayMS < 0 {
		return fmt.Errorf("network_delay_ms cannot be negative")
	}
	return nil
}

// NetworkDelay returns the simulated fetch latency as a duration.
func (c Config) NetworkDelay() time.Duration {
	return time.Duration(c.NetworkDelayMS) * time.Millisecond
}

// SessionPath returns the session file location under the data dir.
func (c Config) SessionPath() string {
	return filepath.Join(c.DataDir, "session.toml")
}

// StorePath returns the sqlite database location under the data dir.
func (c Config) StorePath() string {
	return filepath.Join(c.DataDir, "catalog.db")
}

// LockPath returns the single-instance lock file location.
func (c Config) LockPath() string {
	return filepath.Join(c.DataDir, "echochamber.lock")
}

// LogPath returns the log file location under the data dir.
func (c Config) LogPath() string {
	return filepath.Join(c.DataDir, "echochamber.log")
}

// EnsureDirectories creates the data directory if needed.
func (c Config) EnsureDirectories() error {
	if err := os.MkdirAll(c.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	return nil
}

// Package config loads and saves copgauge configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all copgauge configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	GitHub     GitHubConfig     `toml:"github"`
	Cache      CacheConfig      `toml:"cache"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	Organization string `toml:"organization"`
	DefaultDays  int    `toml:"default_days"`
	TopN         int    `toml:"top_n"`
}

// GitHubConfig holds GitHub API settings.
type GitHubConfig struct {
	Token   string `toml:"token,omitempty"`
	BaseURL string `toml:"base_url,omitempty"`
}

// CacheConfig holds raw-payload cache settings.
type CacheConfig struct {
	TTLHours int `toml:"ttl_hours"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DefaultDays: 28,
			TopN:        5,
		},
		Cache: CacheConfig{
			TTLHours: 6,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "copgauge")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "copgauge")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// CachePath returns the path to the SQLite payload cache.
func CachePath() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "copgauge", "cache.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "copgauge", "cache.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// GetToken returns the API token from env var or config, in that order.
func GetToken(cfg Config) string {
	if tok := os.Getenv("GITHUB_TOKEN"); tok != "" {
		return tok
	}
	if tok := os.Getenv("GH_TOKEN"); tok != "" {
		return tok
	}
	return cfg.GitHub.Token
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

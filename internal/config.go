// Package internal wires the cookbook client application together.
package internal

import (
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config represents the application configuration.
type Config struct {
	App   ApplicationConfig `yaml:"app"`
	API   APIConfig         `yaml:"api"`
	State StateConfig       `yaml:"state"`
	Cache CacheConfig       `yaml:"cache"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.API.Validate(); err != nil {
		return err
	}
	if err := c.State.Validate(); err != nil {
		return err
	}
	return c.Cache.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
}

// APIConfig holds the remote recipe service endpoint configuration.
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// Validate validates the API configuration.
func (c *APIConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.BaseURL, validation.Required, validation.By(func(v any) error {
			u, err := url.Parse(v.(string))
			if err != nil {
				return err
			}
			return validation.Validate(u.Scheme, validation.Required, validation.In("http", "https"))
		})),
		validation.Field(&c.Timeout, validation.Min(time.Duration(0))),
	)
}

// StateConfig holds the path to the client state directory, which contains
// the persisted session credential and recipe draft files.
type StateConfig struct {
	Dir string `yaml:"dir"`
}

// Validate validates the state configuration.
func (c *StateConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Dir, validation.Required),
	)
}

// DraftsDir returns the directory draft files live in.
func (c *StateConfig) DraftsDir() string {
	return filepath.Join(c.Dir, "drafts")
}

// SessionPath returns the fixed path of the persisted session credential.
func (c *StateConfig) SessionPath() string {
	return filepath.Join(c.Dir, "session.yaml")
}

// CacheConfig holds the local feed cache database configuration.
type CacheConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the cache configuration.
func (c *CacheConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
// State lives under ~/.cookbook unless overridden.
func NewDefaultConfig() *Config {
	stateDir := ".cookbook"
	if home, err := os.UserHomeDir(); err == nil {
		stateDir = filepath.Join(home, ".cookbook")
	}
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelWarn,
		},
		API: APIConfig{
			BaseURL: "http://localhost:8000",
			Timeout: 30 * time.Second,
		},
		State: StateConfig{
			Dir: stateDir,
		},
		Cache: CacheConfig{
			Path: filepath.Join(stateDir, "cache.db"),
		},
	}
}

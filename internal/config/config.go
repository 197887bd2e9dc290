// Package config persists client settings: the backend server, the OAuth
// token, and UI preferences. The file lives at ~/.dochub/config.json and all
// access goes through mutex-guarded methods.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"dochub/internal/errors"
)

// DefaultServerURL is used when no server has been configured.
const DefaultServerURL = "https://api.dochub.dev"

// Config holds the application configuration
type Config struct {
	ServerURL            string        `json:"server_url"`
	Token                *oauth2.Token `json:"token,omitempty"`                 // OAuth token from 'dochub login'
	Theme                string        `json:"theme,omitempty"`                 // UI theme name (e.g., "dark-purple", "nord")
	NotificationsEnabled bool          `json:"notifications_enabled,omitempty"` // Desktop notifications for bulk operations
	DownloadDir          string        `json:"download_dir,omitempty"`          // Target directory for document downloads
	LastSpaceID          string        `json:"last_space_id,omitempty"`         // Space selected when the app last exited

	mu       sync.RWMutex
	filePath string
}

// Dir returns the path to the config directory
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".dochub"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or creates a new one if it doesn't exist
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from a specific path (exposed for tests).
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{
		ServerURL: DefaultServerURL,
		filePath:  path,
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg.applyEnvOverrides()
		return cfg, nil
	}
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides lets DOCHUB_SERVER and DOCHUB_TOKEN take precedence over
// the persisted values. A .env file in the working directory is honored via
// godotenv in cmd before Load runs.
func (c *Config) applyEnvOverrides() {
	if server := os.Getenv("DOCHUB_SERVER"); server != "" {
		c.ServerURL = server
	}
	if token := os.Getenv("DOCHUB_TOKEN"); token != "" {
		c.Token = &oauth2.Token{AccessToken: token}
	}
	if c.ServerURL == "" {
		c.ServerURL = DefaultServerURL
	}
}

// Validate checks that the config is internally consistent.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.ServerURL == "" {
		return errors.ConfigInvalid("server URL is empty")
	}
	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	// 0600: the file holds an access token.
	if err := os.WriteFile(c.filePath, data, 0600); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// GetServerURL returns the configured backend server URL
func (c *Config) GetServerURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ServerURL
}

// SetServerURL sets the backend server URL
func (c *Config) SetServerURL(url string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ServerURL = url
}

// GetToken returns the stored OAuth token, or nil if not logged in
func (c *Config) GetToken() *oauth2.Token {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Token
}

// SetToken stores the OAuth token
func (c *Config) SetToken(tok *oauth2.Token) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Token = tok
}

// AccessToken returns the bearer token for API requests, or "" when not
// logged in.
func (c *Config) AccessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.Token == nil {
		return ""
	}
	return c.Token.AccessToken
}

// ClearToken removes the stored OAuth token
func (c *Config) ClearToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Token = nil
}

// IsLoggedIn returns true when a usable token is present
func (c *Config) IsLoggedIn() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.Token == nil || c.Token.AccessToken == "" {
		return false
	}
	// A zero expiry means the token does not expire (env override case).
	if !c.Token.Expiry.IsZero() && c.Token.Expiry.Before(time.Now()) {
		return false
	}
	return true
}

// GetTheme returns the current theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the current theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}

// GetDownloadDir returns the download target directory, defaulting to
// ~/Downloads when unset.
func (c *Config) GetDownloadDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.DownloadDir != "" {
		return c.DownloadDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Downloads")
}

// SetDownloadDir sets the download target directory
func (c *Config) SetDownloadDir(dir string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.DownloadDir = dir
}

// GetLastSpaceID returns the space that was selected when the app last exited
func (c *Config) GetLastSpaceID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.LastSpaceID
}

// SetLastSpaceID records the currently selected space
func (c *Config) SetLastSpaceID(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.LastSpaceID = id
}

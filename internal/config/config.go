package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds application configuration
type Config struct {
	Theme       string `yaml:"theme"`
	SessionFile string `yaml:"session_file"` // overrides the default session path
}

// Load loads configuration from config file and environment variables
// Environment variables take precedence over config file values
func Load() (*Config, error) {
	cfg := &Config{}

	// Load from config file first
	if err := cfg.loadFromFile(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	// Environment variables override config file
	cfg.loadFromEnv()

	return cfg, nil
}

func (c *Config) loadFromFile() error {
	configPath := getConfigPath()
	if configPath == "" {
		return os.ErrNotExist
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, c)
}

func (c *Config) loadFromEnv() {
	if theme := os.Getenv("FACEOFF_THEME"); theme != "" {
		c.Theme = theme
	}
	if session := os.Getenv("FACEOFF_SESSION_FILE"); session != "" {
		c.SessionFile = session
	}
}

// getConfigPath returns the path to the config file
// Priority: $FACEOFF_CONFIG > ~/.config/faceoff/config.yaml
func getConfigPath() string {
	if configPath := os.Getenv("FACEOFF_CONFIG"); configPath != "" {
		return configPath
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".config", "faceoff", "config.yaml")
}

func GetConfigDir() (string, error) {
	configPath := getConfigPath()
	if configPath == "" {
		return "", fmt.Errorf("cannot determine config path")
	}
	return filepath.Dir(configPath), nil
}

// EnsureConfigDir ensures the config directory exists
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}

	return configDir, nil
}

// SessionPath returns the path of the engine's session file.
// Priority: session_file from config > <config dir>/session.json
func (c *Config) SessionPath() string {
	if c.SessionFile != "" {
		return c.SessionFile
	}

	configDir, err := EnsureConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, "session.json")
}

func (c *Config) Save() error {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, "config.yaml")

	// Load existing config to preserve hand-edited fields
	existing := &Config{}
	if data, err := os.ReadFile(configPath); err == nil {
		yaml.Unmarshal(data, existing)
	}

	// Update only the fields we manage
	existing.Theme = c.Theme
	// Note: existing.SessionFile is preserved as-is

	data, err := yaml.Marshal(existing)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte("# Faceoff Configuration\n\n")
	return os.WriteFile(configPath, append(header, data...), 0600)
}

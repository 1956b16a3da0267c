package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Colour modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the application configuration
type Config struct {
	Color         string `toml:"color"`
	LogLevel      string `toml:"log_level"`
	RevealDelayMS int    `toml:"reveal_delay_ms"`
	DeckLibrary   string `toml:"deck_library,omitempty"`
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		Color:         ColorAuto,
		LogLevel:      "warn",
		RevealDelayMS: 1000,
	}
}

// RevealDelay is how long a mismatched pair stays face-up
func (c *Config) RevealDelay() time.Duration {
	return time.Duration(c.RevealDelayMS) * time.Millisecond
}

// Validate checks the configured values
func (c *Config) Validate() error {
	switch strings.ToLower(c.Color) {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (expected auto, always or never)", c.Color)
	}

	if c.RevealDelayMS < 0 {
		return fmt.Errorf("reveal_delay_ms must not be negative: %d", c.RevealDelayMS)
	}

	return nil
}

var configPathOverride string

// SetConfigFilePath makes LoadConfig use path instead of the XDG location
func SetConfigFilePath(path string) {
	configPathOverride = path
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetDeckLibraryPath returns the directory saved layouts live in
func (c *Config) GetDeckLibraryPath() string {
	if c.DeckLibrary != "" {
		return c.DeckLibrary
	}
	return filepath.Join(GetXDGDataHome(), "pairs", "decks")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	if configPathOverride != "" {
		return configPathOverride
	}
	return filepath.Join(GetXDGConfigHome(), "pairs", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults if missing
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}
	config.Color = strings.ToLower(config.Color)

	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := SaveConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig writes the config file
func SaveConfig(config *Config) (err error) {
	configPath := GetConfigFilePath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error writing config file: %w", cerr)
		}
	}()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// GetDeckPath returns the path to a layout, either in the deck library or a relative path
func (c *Config) GetDeckPath(deckName string) (string, error) {
	libraryPath := c.GetDeckLibraryPath()
	for _, candidate := range []string{deckName, deckName + ".toml"} {
		deckPath := filepath.Join(libraryPath, candidate)
		if _, err := os.Stat(deckPath); err == nil {
			return deckPath, nil
		}
	}

	// If not found in the library, treat as a relative path
	if _, err := os.Stat(deckName); err == nil {
		return deckName, nil
	}

	return "", fmt.Errorf("deck not found: %s", deckName)
}

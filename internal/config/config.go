package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Symbol sets for suit glyphs
const (
	SymbolsUnicode = "unicode"
	SymbolsASCII   = "ascii"
)

// Config represents the application configuration
type Config struct {
	Color     bool   `toml:"color"`
	Symbols   string `toml:"symbols"`
	NamesFile string `toml:"names_file"`
	LogLevel  string `toml:"log_level"`
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		Color:    true,
		Symbols:  SymbolsUnicode,
		LogLevel: "warn",
	}
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

// GetDeckLibraryPath returns the path to the shared tarot deck library
func GetDeckLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), "tarot", "decks")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "fortune", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults when missing.
// FORTUNE_LOG_LEVEL overrides the configured log level.
func LoadConfig() (*Config, error) {
	config, err := readConfig()
	if err != nil {
		return nil, err
	}

	if level := os.Getenv("FORTUNE_LOG_LEVEL"); level != "" {
		config.LogLevel = level
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// readConfig reads the config file as stored on disk
func readConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	var config *Config
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config, err = createDefaultConfig()
		if err != nil {
			return nil, err
		}
	} else {
		config = Default()
		if _, err := toml.DecodeFile(configPath, config); err != nil {
			return nil, fmt.Errorf("error decoding config file: %w", err)
		}
	}

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

// SaveConfig writes config to the config file
func SaveConfig(config *Config) error {
	configPath := GetConfigFilePath()

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// Set updates a single key of the config file
func Set(key, value string) error {
	config, err := readConfig()
	if err != nil {
		return err
	}

	switch key {
	case "color":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for color: %s", value)
		}
		config.Color = b
	case "symbols":
		config.Symbols = value
	case "names_file":
		config.NamesFile = value
	case "log_level":
		config.LogLevel = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}

	if err := config.validate(); err != nil {
		return err
	}

	return SaveConfig(config)
}

func (c *Config) validate() error {
	if c.Symbols != SymbolsUnicode && c.Symbols != SymbolsASCII {
		return fmt.Errorf("invalid symbols %q (expected %s or %s)", c.Symbols, SymbolsUnicode, SymbolsASCII)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// SlogLevel returns the configured log level
func (c *Config) SlogLevel() slog.Level {
	level, err := ParseLogLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return level
}

func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q", s)
	}
}

// GetNamesPath resolves the names_file setting: a deck in the deck
// library, or a path to a deck directory or names file.
func (c *Config) GetNamesPath() (string, error) {
	if c.NamesFile == "" {
		return "", nil
	}

	// First, try to find the deck in the deck library
	deckPath := filepath.Join(GetDeckLibraryPath(), c.NamesFile)
	if _, err := os.Stat(deckPath); err == nil {
		return deckPath, nil
	}

	// If not found in the library, treat as a path
	if _, err := os.Stat(c.NamesFile); err == nil {
		return c.NamesFile, nil
	}

	return "", fmt.Errorf("names file not found: %s", c.NamesFile)
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for textfmt
type Config struct {
	Default  DefaultConfig  `mapstructure:"default"`
	Greeting GreetingConfig `mapstructure:"greeting"`
	UI       UIConfig       `mapstructure:"ui"`
}

// DefaultConfig holds default settings
type DefaultConfig struct {
	Mode string `mapstructure:"mode"`
}

// GreetingConfig holds the greeting message settings
type GreetingConfig struct {
	Template string `mapstructure:"template"` // must contain exactly one %s
}

// UIConfig holds terminal output settings
type UIConfig struct {
	Color *bool `mapstructure:"color"` // default: true
}

var (
	cfg     *Config
	cfgFile string
)

// HomeDir returns the path to the textfmt configuration directory.
// It checks the TEXTFMT_HOME environment variable first, then falls
// back to ~/.textfmt.
func HomeDir() (string, error) {
	if home := os.Getenv("TEXTFMT_HOME"); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".textfmt"), nil
}

// Init initializes the configuration system
func Init(customCfgFile string) error {
	cfgFile = customCfgFile

	dir, err := HomeDir()
	if err != nil {
		return err
	}

	// Ensure config directory exists
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Set config file
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(dir)
		viper.SetConfigName("config")
		viper.SetConfigType("toml")
	}

	setDefaults()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is okay, we'll use defaults
	}

	// Unmarshal into struct
	cfg = &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("default.mode", "plain")
	viper.SetDefault("greeting.template", "Hello, %s! Welcome to the system.")
	viper.SetDefault("ui.color", true)
}

// Get returns the current configuration
func Get() *Config {
	if cfg == nil {
		// Return default config if not initialized
		return &Config{
			Default:  DefaultConfig{Mode: "plain"},
			Greeting: GreetingConfig{Template: "Hello, %s! Welcome to the system."},
		}
	}
	return cfg
}

// Set sets a configuration value
func Set(key string, value interface{}) error {
	viper.Set(key, value)
	return Save()
}

// Save writes the configuration to disk
func Save() error {
	dir, err := HomeDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(dir, "config.toml")
	return viper.WriteConfigAs(configPath)
}

// GetMode returns the configured default formatting mode.
func (c *Config) GetMode() string {
	if c.Default.Mode == "" {
		return "plain"
	}
	return c.Default.Mode
}

// GetTemplate returns the configured greeting template, falling back to
// the built-in one when the value is empty or lacks a name placeholder.
func (c *Config) GetTemplate() string {
	t := c.Greeting.Template
	if strings.Count(t, "%s") != 1 {
		return "Hello, %s! Welcome to the system."
	}
	return t
}

// ShouldColor returns whether styled terminal output is enabled.
func (c *Config) ShouldColor() bool {
	if c.UI.Color == nil {
		return true
	}
	return *c.UI.Color
}

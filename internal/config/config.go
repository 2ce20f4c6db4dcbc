package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"codebird/internal/common"
)

// Settings holds user-level preferences, stored outside any repository
type Settings struct {
	// Color controls terminal colors: auto, always, never
	Color string `yaml:"color"`
	// LogLevel controls diagnostic logging: none, info, debug
	LogLevel string `yaml:"log_level"`
	// LogLimit caps how many commits 'codebird log' prints; 0 means all
	LogLimit int `yaml:"log_limit"`
}

// Default returns the settings used when no config file exists
func Default() *Settings {
	return &Settings{
		Color:    "auto",
		LogLevel: "none",
		LogLimit: 0,
	}
}

func GetConfigPath() string {
	// Check for environment variable first
	if configPath := os.Getenv("CODEBIRD_CONFIG"); configPath != "" {
		return filepath.Dir(configPath)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".codebird")
}

func GetConfigFile() string {
	// Check for environment variable first
	if configFile := os.Getenv("CODEBIRD_CONFIG"); configFile != "" {
		// Validate the path to prevent directory traversal
		cleaned, err := common.CleanPath(configFile)
		if err != nil {
			// Fall back to default if invalid
			return filepath.Join(GetConfigPath(), "config.yaml")
		}
		return cleaned
	}
	return filepath.Join(GetConfigPath(), "config.yaml")
}

func Load() (*Settings, error) {
	configFile := GetConfigFile()

	cleanedPath, err := common.CleanPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("invalid config file path: %w", err)
	}

	// Missing config file means defaults
	if _, err := os.Stat(cleanedPath); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(cleanedPath) // #nosec G304 - path is validated
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	settings := Default()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return settings, nil
}

func Save(settings *Settings) error {
	configPath := GetConfigPath()
	if err := os.MkdirAll(configPath, common.DirPermissionSecure); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(GetConfigFile(), data, common.FilePermissionSecure); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func Exists() bool {
	_, err := os.Stat(GetConfigFile())
	return err == nil
}

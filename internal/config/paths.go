package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the path to the user-level config file.
// This follows the XDG Base Directory Specification:
// - Linux: ~/.config/bootstrap/config.yml
// - macOS: ~/Library/Application Support/bootstrap/config.yml
// - Windows: %APPDATA%\bootstrap\config.yml
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "bootstrap", "config.yml"), nil
}

// ProjectConfigPath returns the path to the project-level config file.
// This is always .bootstrap/config.yml relative to the working directory.
func ProjectConfigPath() string {
	return filepath.Join(".bootstrap", "config.yml")
}

// ProjectConfigDir returns the path to the project-level config directory.
func ProjectConfigDir() string {
	return ".bootstrap"
}

// LegacyProjectConfigPath returns the path to the legacy project-level JSON
// config file, kept readable for backward compatibility.
func LegacyProjectConfigPath() string {
	return filepath.Join(".bootstrap", "config.json")
}

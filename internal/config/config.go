// Package config provides hierarchical configuration management for bootstrap
// using koanf. Configuration is loaded with priority: environment variables >
// project config (.bootstrap/config.yml) > user config (XDG config dir) >
// defaults. Legacy JSON project configs are still read, with a migration warning.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the bootstrap CLI tool configuration.
type Configuration struct {
	// Installer is the package-installation tool invoked by install-reqs
	// and init (e.g. "uv").
	Installer string `koanf:"installer" validate:"required"`

	// TaskRunner is the task-automation tool initialized by init (e.g. "task").
	TaskRunner string `koanf:"task_runner" validate:"required"`

	// RequirementsFile is the default requirements file for install-reqs.
	RequirementsFile string `koanf:"requirements_file" validate:"required"`

	// Timeout bounds the install-reqs subprocess, in seconds.
	Timeout int `koanf:"timeout" validate:"min=1,max=3600"`

	// InitTimeout bounds each init subprocess (uv init, task --init), in seconds.
	InitTimeout int `koanf:"init_timeout" validate:"min=1,max=600"`

	// InstallCommand overrides the generated install command. Must contain
	// the {{FILE}} placeholder, which is replaced with the requirements path.
	// Example: "pip install -r {{FILE}}"
	InstallCommand string `koanf:"install_command"`

	// ShowProgress enables the spinner while the installer runs (TTY only).
	ShowProgress bool `koanf:"show_progress"`

	// SampleData configures the sample-data command defaults.
	SampleData SampleDataConfig `koanf:"sample_data"`
}

// SampleDataConfig holds defaults for generated sample CSV files.
type SampleDataConfig struct {
	Rows int    `koanf:"rows" validate:"min=1"`
	Cols int    `koanf:"cols" validate:"min=1,max=64"`
	Dir  string `koanf:"dir" validate:"required"`
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path (default: .bootstrap/config.yml)
	ProjectConfigPath string
	// WarningWriter receives migration warnings (default: os.Stderr)
	WarningWriter io.Writer
	// SkipWarnings suppresses migration warnings
	SkipWarnings bool
}

// Load loads configuration from user, project, and environment sources.
// Priority: Environment variables > Project config > User config > Defaults
func Load(projectConfigPath string) (*Configuration, error) {
	return LoadWithOptions(LoadOptions{ProjectConfigPath: projectConfigPath})
}

// LoadWithOptions loads configuration with custom options.
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")
	warningWriter := opts.WarningWriter
	if warningWriter == nil {
		warningWriter = os.Stderr
	}

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	if err := loadUserConfig(k); err != nil {
		return nil, err
	}

	if err := loadProjectConfig(k, opts.ProjectConfigPath, warningWriter, opts.SkipWarnings); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider("BOOTSTRAP_", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment config: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ValidateConfigValues(&cfg, "config"); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadUserConfig loads the user-level YAML config if it exists.
func loadUserConfig(k *koanf.Koanf) error {
	userPath, err := UserConfigPath()
	if err != nil || !fileExists(userPath) {
		return nil
	}
	if err := ValidateYAMLSyntax(userPath); err != nil {
		return fmt.Errorf("validating YAML syntax for user config: %w", err)
	}
	if err := k.Load(file.Provider(userPath), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load user config %s: %w", userPath, err)
	}
	return nil
}

// loadProjectConfig loads project-level config, preferring YAML over the
// legacy JSON location.
func loadProjectConfig(k *koanf.Koanf, customPath string, warningWriter io.Writer, skipWarnings bool) error {
	yamlPath := ProjectConfigPath()
	if customPath != "" {
		yamlPath = customPath
	}
	legacyPath := LegacyProjectConfigPath()

	if fileExists(yamlPath) {
		if err := ValidateYAMLSyntax(yamlPath); err != nil {
			return fmt.Errorf("validating YAML syntax for project config: %w", err)
		}
		if err := k.Load(file.Provider(yamlPath), yaml.Parser()); err != nil {
			return fmt.Errorf("failed to load project config %s: %w", yamlPath, err)
		}
		return nil
	}

	if fileExists(legacyPath) {
		if err := k.Load(file.Provider(legacyPath), json.Parser()); err != nil {
			return fmt.Errorf("failed to load legacy project config %s: %w", legacyPath, err)
		}
		if !skipWarnings {
			fmt.Fprintf(warningWriter, "Warning: Using deprecated JSON config at %s\n", legacyPath)
			fmt.Fprintf(warningWriter, "  Rewrite it as %s to silence this warning.\n\n", ProjectConfigPath())
		}
	}
	return nil
}

// fileExists returns true if the file exists and is readable.
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// envTransform converts environment variable names to config keys.
// Example: BOOTSTRAP_REQUIREMENTS_FILE -> requirements_file
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "BOOTSTRAP_"))
}

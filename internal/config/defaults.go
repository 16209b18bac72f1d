package config

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options.
func GetDefaultConfigTemplate() string {
	return `# Bootstrap Configuration
# Values here override the built-in defaults; BOOTSTRAP_* environment
# variables override values here.

installer: uv                         # Package-installation tool
task_runner: task                     # Task-automation tool
requirements_file: requirements-dev.txt  # Default requirements file for install-reqs
timeout: 300                          # install-reqs timeout in seconds (1-3600)
init_timeout: 30                      # Per-command init timeout in seconds (1-600)
install_command: ""                   # Override install command, e.g. "pip install -r {{FILE}}"
show_progress: true                   # Spinner while the installer runs (TTY only)

# sample-data command defaults
sample_data:
  rows: 1000                          # Rows per generated CSV
  cols: 5                             # Columns per generated CSV
  dir: sample_data                    # Output directory
`
}

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"installer":         "uv",
		"task_runner":       "task",
		"requirements_file": "requirements-dev.txt",
		// timeout: package installation gets a generous 5 minutes, matching
		// the install-reqs flag default.
		"timeout": 300,
		// init_timeout: uv init and task --init are quick; 30 seconds each.
		"init_timeout":    30,
		"install_command": "",
		"show_progress":   true,
		// sample_data: defaults for the generated risky CSV.
		"sample_data": map[string]interface{}{
			"rows": 1000,
			"cols": 5,
			"dir":  "sample_data",
		},
	}
}

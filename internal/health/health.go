// Package health provides environment health checks for bootstrap. It
// validates that the external tools (installer, task runner) are available
// and that the project has the expected files, returning structured reports
// used by the 'bootstrap doctor' command.
package health

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// CheckResult represents the result of a single health check.
type CheckResult struct {
	Name    string
	Passed  bool
	Message string
}

// Report contains all health check results.
type Report struct {
	Checks []CheckResult
	Passed bool
}

// Checker runs health checks against a project directory.
type Checker struct {
	// Installer and TaskRunner are the external binaries to look up.
	Installer  string
	TaskRunner string

	// RequirementsFile is the requirements file expected in the project.
	RequirementsFile string

	// Dir is the project directory. Empty means the current directory.
	Dir string
}

// Run executes all health checks and returns a report.
func (c *Checker) Run() *Report {
	report := &Report{Passed: true}

	add := func(r CheckResult) {
		report.Checks = append(report.Checks, r)
		if !r.Passed {
			report.Passed = false
		}
	}

	add(checkTool(c.Installer, "package installer"))
	add(checkTool(c.TaskRunner, "task runner"))
	add(c.checkFile(c.RequirementsFile, "Requirements file",
		"run 'bootstrap init' to create it"))
	add(c.checkFile(filepath.Join(".bootstrap", "config.yml"), "Project config",
		"run 'bootstrap init' to create it"))
	add(c.checkWritable())

	return report
}

// checkTool verifies a binary is available in PATH.
func checkTool(tool, role string) CheckResult {
	name := fmt.Sprintf("%s (%s)", tool, role)
	if tool == "" {
		return CheckResult{Name: role, Passed: false, Message: "no tool configured"}
	}
	if _, err := exec.LookPath(tool); err != nil {
		return CheckResult{
			Name:    name,
			Passed:  false,
			Message: fmt.Sprintf("%q not found in PATH", tool),
		}
	}
	return CheckResult{Name: name, Passed: true, Message: "found in PATH"}
}

// checkFile verifies a project file exists.
func (c *Checker) checkFile(path, name, hint string) CheckResult {
	full := path
	if c.Dir != "" && !filepath.IsAbs(path) {
		full = filepath.Join(c.Dir, path)
	}
	if _, err := os.Stat(full); err != nil {
		return CheckResult{
			Name:    name,
			Passed:  false,
			Message: fmt.Sprintf("%s missing (%s)", path, hint),
		}
	}
	return CheckResult{Name: name, Passed: true, Message: path}
}

// checkWritable verifies the project directory accepts writes.
func (c *Checker) checkWritable() CheckResult {
	dir := c.Dir
	if dir == "" {
		dir = "."
	}
	probe, err := os.CreateTemp(dir, ".bootstrap-probe-*")
	if err != nil {
		return CheckResult{
			Name:    "Working directory",
			Passed:  false,
			Message: fmt.Sprintf("not writable: %v", err),
		}
	}
	probe.Close()
	os.Remove(probe.Name())
	return CheckResult{Name: "Working directory", Passed: true, Message: "writable"}
}

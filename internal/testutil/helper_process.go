// Package testutil provides test utilities and helpers for bootstrap tests.
package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"testing"
	"time"
)

// HelperProcessConfig configures the behavior of TestHelperProcess.
type HelperProcessConfig struct {
	// ExitCode is the exit code to return (default 0).
	ExitCode int `json:"exit_code"`
	// Stdout is the content to write to stdout.
	Stdout string `json:"stdout"`
	// Stderr is the content to write to stderr.
	Stderr string `json:"stderr"`
	// SleepMS delays exit by the given number of milliseconds, for
	// exercising timeouts.
	SleepMS int `json:"sleep_ms"`
}

// Environment variable names used by TestHelperProcess.
const (
	// EnvWantHelperProcess signals that the test binary should run as a helper process.
	EnvWantHelperProcess = "GO_WANT_HELPER_PROCESS"
	// EnvHelperProcessConfig contains JSON-encoded HelperProcessConfig.
	EnvHelperProcessConfig = "GO_HELPER_PROCESS_CONFIG"
)

// TestHelperProcess implements the helper process pattern. When the test
// binary is re-invoked with GO_WANT_HELPER_PROCESS=1 it behaves as a mock
// subprocess per the config in the environment and exits without returning.
// Without the variable it returns immediately, allowing normal test execution.
//
// Usage in a test file:
//
//	func TestHelperProcess(t *testing.T) {
//	    testutil.TestHelperProcess(t)
//	}
func TestHelperProcess(t *testing.T) {
	if os.Getenv(EnvWantHelperProcess) != "1" {
		return
	}

	config := HelperProcessConfig{}
	if configJSON := os.Getenv(EnvHelperProcessConfig); configJSON != "" {
		// Ignore parse errors; use defaults on failure
		_ = json.Unmarshal([]byte(configJSON), &config)
	}

	if config.SleepMS > 0 {
		time.Sleep(time.Duration(config.SleepMS) * time.Millisecond)
	}
	if config.Stdout != "" {
		fmt.Fprint(os.Stdout, config.Stdout)
	}
	if config.Stderr != "" {
		fmt.Fprint(os.Stderr, config.Stderr)
	}
	os.Exit(config.ExitCode)
}

// HelperCommand returns a command line that re-invokes the test binary as a
// helper process, plus the environment variables that select the helper
// behavior. The command line is suitable for runner.Runner, whose Env field
// accepts the returned map.
func HelperCommand(t *testing.T, testName string, config HelperProcessConfig) (string, map[string]string) {
	t.Helper()

	testBinary, err := os.Executable()
	if err != nil {
		t.Fatalf("failed to get test binary path: %v", err)
	}

	env := map[string]string{EnvWantHelperProcess: "1"}
	if configJSON, err := json.Marshal(config); err == nil {
		env[EnvHelperProcessConfig] = string(configJSON)
	}

	return fmt.Sprintf("%s -test.run=%s", testBinary, testName), env
}

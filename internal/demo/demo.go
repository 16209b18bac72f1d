// Package demo prints a fixed demonstration of the bootstrap tool. It has no
// side effects beyond output; repeated invocations produce identical bytes.
package demo

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aj-igherighe/bootstrap/internal/output"
)

// Run writes the demo output for the given working directory to out.
func Run(out io.Writer, dir string, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}

	fmt.Fprintln(out, "Running Bootstrap Demo...")
	fmt.Fprintln(out, strings.Repeat("-", 50))

	hello(out, dir, logger)
	world(out, logger)

	output.PrintSuccess(out, "Demo completed!")
}

// hello prints the classic greeting with the working directory.
func hello(out io.Writer, dir string, logger *slog.Logger) {
	message := fmt.Sprintf("Hello World: %s", dir)
	logger.Info(message)
	fmt.Fprintln(out, message)
}

// world prints three times World.
func world(out io.Writer, logger *slog.Logger) {
	logger.Info("executing world step")
	fmt.Fprintln(out, "Hello World World World")
}

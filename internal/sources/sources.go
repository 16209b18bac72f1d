// Package sources manages the configured project sources. The registry is a
// fixed placeholder list for now; install and update log what they would do.
package sources

import (
	"fmt"
	"io"
	"log/slog"
)

// Source is a named location packages can be installed from.
type Source struct {
	Name string
}

// Registry holds the known sources.
type Registry struct {
	Out     io.Writer
	Logger  *slog.Logger
	entries []Source
}

// NewRegistry returns a registry with the built-in placeholder sources.
func NewRegistry(out io.Writer, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		Out:    out,
		Logger: logger,
		entries: []Source{
			{Name: "source1"},
			{Name: "source2"},
		},
	}
}

// List prints all configured sources.
func (r *Registry) List() {
	r.Logger.Info("listing sources")
	fmt.Fprintln(r.Out, "Sources:")
	for _, s := range r.entries {
		fmt.Fprintf(r.Out, "  • %s\n", s.Name)
	}
}

// Install installs a specific source by name.
func (r *Registry) Install(name string) {
	r.Logger.Info("installing source", "name", name)
	fmt.Fprintf(r.Out, "Installing source: %s\n", name)
}

// Update updates all sources.
func (r *Registry) Update() {
	r.Logger.Info("updating sources")
	fmt.Fprintln(r.Out, "Updating all sources...")
}

// Names returns the configured source names.
func (r *Registry) Names() []string {
	names := make([]string, len(r.entries))
	for i, s := range r.entries {
		names[i] = s.Name
	}
	return names
}

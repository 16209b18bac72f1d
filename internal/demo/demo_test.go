package demo

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun_Output(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	Run(&buf, "/tmp/project", discardLogger())

	out := buf.String()
	assert.Contains(t, out, "Running Bootstrap Demo...")
	assert.Contains(t, out, "Hello World: /tmp/project")
	assert.Contains(t, out, "Hello World World World")
	assert.Contains(t, out, "Demo completed!")
}

func TestRun_Deterministic(t *testing.T) {
	t.Parallel()

	var first, second bytes.Buffer
	Run(&first, "/tmp/project", discardLogger())
	Run(&second, "/tmp/project", discardLogger())

	assert.Equal(t, first.String(), second.String())
}

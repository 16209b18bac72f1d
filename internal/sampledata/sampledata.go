// Package sampledata generates CSV files that mix ordinary values with
// formula-like cells, for exercising CSV-injection handling in downstream
// tooling. Output is deterministic for a fixed seed.
package sampledata

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
)

// Default generation parameters, overridable via flags and config.
const (
	DefaultRows = 1000
	DefaultCols = 5
	DefaultFile = "risky.csv"
	DefaultDir  = "sample_data"
)

// safeWords are ordinary cell values.
var safeWords = []string{
	"invoice", "payment", "summary", "note", "value", "description",
	"update", "record", "customer", "portfolio",
}

// riskyCells are formula-like values a spreadsheet might try to evaluate.
var riskyCells = []string{
	"=SUM(A1:A3)", "+AVG(B2:B10)", "-12345", "@HYPERLINK('url')",
	"=CMD('example')", "+OPEN('file')", "-CALC()", "@SHELL('cmd')",
}

// Generator produces risky CSV data.
type Generator struct {
	Rows int
	Cols int

	// RiskyRatio is the probability of a formula-like cell (default 0.2).
	// NumericRatio is the probability of a plain integer cell (default 0.4),
	// evaluated after the risky roll misses.
	RiskyRatio   float64
	NumericRatio float64

	rng *rand.Rand
}

// New creates a Generator with the given dimensions and seed.
func New(rows, cols int, seed int64) *Generator {
	if rows <= 0 {
		rows = DefaultRows
	}
	if cols <= 0 {
		cols = DefaultCols
	}
	return &Generator{
		Rows:         rows,
		Cols:         cols,
		RiskyRatio:   0.2,
		NumericRatio: 0.4,
		rng:          rand.New(rand.NewSource(seed)),
	}
}

// Write streams the CSV (header plus Rows rows) to w.
func (g *Generator) Write(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := make([]string, g.Cols)
	for i := range header {
		header[i] = fmt.Sprintf("col%d", i)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	row := make([]string, g.Cols)
	for r := 0; r < g.Rows; r++ {
		for c := range row {
			row[c] = g.cell()
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", r, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile generates the CSV at path, creating parent directories.
func (g *Generator) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := g.Write(f); err != nil {
		return err
	}
	return f.Close()
}

// cell returns a risky, numeric, or safe value per the configured ratios.
func (g *Generator) cell() string {
	if g.rng.Float64() < g.RiskyRatio {
		return riskyCells[g.rng.Intn(len(riskyCells))]
	}
	if g.rng.Float64() < g.NumericRatio {
		return fmt.Sprintf("%d", 1+g.rng.Intn(10000))
	}
	return safeWords[g.rng.Intn(len(safeWords))]
}

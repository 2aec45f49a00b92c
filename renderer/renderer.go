// Package renderer renders analysis reports in different formats.
package renderer

import (
	"io"

	"github.com/alazlabs/alaz/objdump"
)

// Row pairs one listing entry with its gloss.
type Row struct {
	Entry objdump.DumpEntry `json:"entry"`
	Gloss string            `json:"gloss"`
}

// LevelReport holds the rows extracted from one dump file (one optimization
// level).
type LevelReport struct {
	Level string `json:"level"`
	Rows  []Row  `json:"rows"`
}

// FunctionReport is the full analysis result for one function.
type FunctionReport struct {
	Function string        `json:"function"`
	Levels   []LevelReport `json:"levels"`
}

// Renderer writes a function report in a specific output format.
type Renderer interface {
	// Render writes the report to the provided writer.
	Render(report *FunctionReport, output io.Writer) error

	// Format returns the name of the output format (e.g. "markdown", "json").
	Format() string
}

package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/alazlabs/alaz/profile"
)

// MarkdownRenderer formats a function report as Markdown comparison tables,
// one per optimization level.
type MarkdownRenderer struct {
	profile *profile.AnalysisProfile
}

// NewMarkdownRenderer creates a Markdown renderer configured by the analysis
// profile.
func NewMarkdownRenderer(profile *profile.AnalysisProfile) Renderer {
	return &MarkdownRenderer{profile: profile}
}

// Render writes the comparison tables and a summary section.
func (r *MarkdownRenderer) Render(report *FunctionReport, output io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Function `%s`\n\n", report.Function)

	for _, level := range report.Levels {
		fmt.Fprintf(&b, "## %s\n\n", level.Level)
		r.writeTable(&b, level.Rows)
		b.WriteString("\n")
	}

	b.WriteString("## Summary\n\n")
	for _, level := range report.Levels {
		count := 0
		for _, row := range level.Rows {
			if row.Entry.AsmInstruction != "" {
				count++
			}
		}
		fmt.Fprintf(&b, "- %s: %d instructions\n", level.Level, count)
	}

	_, err := io.WriteString(output, b.String())
	return err
}

func (r *MarkdownRenderer) writeTable(b *strings.Builder, rows []Row) {
	b.WriteString("| Source | Assembly | Meaning |\n")
	b.WriteString("|--------|----------|---------|\n")

	previousSource := ""
	for _, row := range rows {
		// An entry without instruction text is an advisory note; give it
		// the whole row untruncated.
		if row.Entry.AsmInstruction == "" {
			fmt.Fprintf(b, "| %s | | |\n", row.Entry.Source)
			continue
		}

		source := ""
		if row.Entry.Source != "" && row.Entry.Source != previousSource {
			previousSource = row.Entry.Source
			source = r.formatSource(row.Entry.Source)
		}
		fmt.Fprintf(b, "| %s | %s | %s |\n", source, row.Entry.AsmInstruction, row.Gloss)
	}
}

// formatSource truncates over-long source text to the configured column
// width.
func (r *MarkdownRenderer) formatSource(source string) string {
	width := r.profile.SourceColumnWidth
	if width <= 0 || len(source) <= width {
		return source
	}
	return source[:width-3] + "..."
}

// Format returns the format type.
func (r *MarkdownRenderer) Format() string {
	return "markdown"
}

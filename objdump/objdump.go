// Package objdump parses objdump-style disassembly listings: it locates
// function boundaries, separates source-annotation lines from instruction
// lines and associates them, and classifies each instruction line.
package objdump

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/alazlabs/alaz/asmparser"
	"github.com/alazlabs/alaz/asmparser/arm64"
)

var (
	// Regular expressions for the listing grammar as emitted by objdump.
	headerRegex      = regexp.MustCompile(`^[0-9a-f]+\s+<([^>]+)>:`)
	instructionRegex = regexp.MustCompile(`^\s*([0-9a-f]+):\s+([0-9a-f]+)\s+(.+)$`)
	inlineRegex      = regexp.MustCompile(`<([^>]+\.part\.\d+)>`)
	sourcePathRegex  = regexp.MustCompile(`^/.*:\d+`)
)

const sectionMarker = "Disassembly of section"

// lineBreak joins multi-line prologue context into one value.
const lineBreak = " <br> "

// DumpEntry is one listing record: the source context in effect, the raw
// address/byte/instruction text, and the classifier's result. Entries are
// produced in listing order and never mutated after creation.
type DumpEntry struct {
	SourceLine     int    // 1-based listing line of the source context, 0 when none
	Source         string // source-context text, possibly multi-line
	Address        string
	MachineCode    string
	AsmInstruction string
	Parsed         *arm64.Instruction // nil when the line failed to classify
}

// DumpParser reads one disassembly listing. It holds only the flat line
// sequence; boundaries are recomputed per query.
type DumpParser struct {
	lines []string
}

// NewDumpParser wraps listing content.
func NewDumpParser(content string) *DumpParser {
	return &DumpParser{lines: strings.Split(content, "\n")}
}

// LoadDumpFile reads a listing from disk.
func LoadDumpFile(path string) (*DumpParser, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading dump file: %w", err)
	}
	return NewDumpParser(string(content)), nil
}

// FindFunction locates the line range belonging to the named function. The
// range ends on the line before the next function header or section marker,
// or on the last line of input.
func (p *DumpParser) FindFunction(name string) (start, end int, err error) {
	start = -1
	for i, line := range p.lines {
		if m := headerRegex.FindStringSubmatch(line); m != nil && m[1] == name {
			start = i
			break
		}
	}
	if start < 0 {
		return 0, 0, fmt.Errorf("%w: %s", asmparser.ErrFunctionNotFound, name)
	}

	for i := start + 1; i < len(p.lines); i++ {
		if headerRegex.MatchString(p.lines[i]) || strings.HasPrefix(p.lines[i], sectionMarker) {
			return start, i - 1, nil
		}
	}
	return start, len(p.lines) - 1, nil
}

// ListFunctions returns every function header name in file order, duplicates
// included.
func (p *DumpParser) ListFunctions() []string {
	var names []string
	for _, line := range p.lines {
		if m := headerRegex.FindStringSubmatch(line); m != nil {
			names = append(names, m[1])
		}
	}
	return names
}

// ExtractFunction produces the ordered entry sequence for one function. A
// single instruction line that fails to classify degrades to an entry with a
// nil Parsed field; only an unlocatable boundary fails the call.
func (p *DumpParser) ExtractFunction(name string) ([]DumpEntry, error) {
	start, end, err := p.FindFunction(name)
	if err != nil {
		return nil, err
	}

	// Detect an inline-substitution marker anywhere in range.
	inlineHelper := ""
	for i := start + 1; i <= end; i++ {
		if m := inlineRegex.FindStringSubmatch(p.lines[i]); m != nil {
			inlineHelper = m[1]
			break
		}
	}

	// Collect source-context lines and find the first instruction line.
	contexts := make(map[int]string)
	firstInstruction := -1
	for i := start + 1; i <= end; i++ {
		line := p.lines[i]
		if instructionRegex.MatchString(line) {
			if firstInstruction < 0 {
				firstInstruction = i
			}
			continue
		}
		if cleaned, ok := contextText(line); ok {
			contexts[i] = cleaned
		}
	}

	// Merge every context line before the first instruction into one
	// synthetic prologue context attributed to that instruction.
	type contextAt struct {
		line int
		text string
	}
	var ordered []contextAt
	if firstInstruction >= 0 {
		var prologue []string
		prologueLine := 0
		for i := start + 1; i < firstInstruction; i++ {
			if text, ok := contexts[i]; ok {
				prologue = append(prologue, text)
				prologueLine = i
			}
		}
		if len(prologue) > 0 {
			ordered = append(ordered, contextAt{prologueLine, strings.Join(prologue, lineBreak)})
		}
		for i := firstInstruction; i <= end; i++ {
			if text, ok := contexts[i]; ok {
				ordered = append(ordered, contextAt{i, text})
			}
		}
	}

	// Walk the range in order; the current context sticks to every following
	// instruction line until the next context line replaces it.
	var entries []DumpEntry
	currentSource := ""
	currentLine := 0
	next := 0
	for i := start + 1; i <= end; i++ {
		for next < len(ordered) && ordered[next].line == i {
			currentSource = ordered[next].text
			currentLine = ordered[next].line + 1
			next++
		}

		m := instructionRegex.FindStringSubmatch(p.lines[i])
		if m == nil {
			continue
		}
		raw := strings.TrimSpace(m[3])
		entries = append(entries, DumpEntry{
			SourceLine:     currentLine,
			Source:         currentSource,
			Address:        m[1],
			MachineCode:    m[2],
			AsmInstruction: raw,
			Parsed:         classify(raw),
		})
	}

	if inlineHelper != "" && len(entries) > 0 {
		entries = append(entries, DumpEntry{
			Source: fmt.Sprintf(
				"note: the main logic was outlined by the compiler; the actual work happens in the generated helper <%s>",
				inlineHelper),
		})
	}
	return entries, nil
}

// contextText reports whether the line is a source-context line and returns
// its trimmed text. Banners, source-path markers, lone braces and
// preprocessor directives are discarded.
func contextText(line string) (string, bool) {
	cleaned := strings.TrimSpace(line)
	switch {
	case cleaned == "",
		strings.HasPrefix(cleaned, "Disassembly"),
		strings.HasPrefix(cleaned, "objdump"),
		strings.HasPrefix(cleaned, "file format"),
		sourcePathRegex.MatchString(cleaned):
		return "", false
	case cleaned == "{" || cleaned == "}",
		strings.HasPrefix(cleaned, "#endif"),
		strings.HasPrefix(cleaned, "#ifdef"),
		strings.HasPrefix(cleaned, "#else"),
		strings.HasPrefix(cleaned, "ERROR:"):
		return "", false
	}
	return cleaned, true
}

// classify runs the mnemonic classifier over one raw instruction line. Parse
// failures degrade to nil so extraction stays best-effort.
func classify(raw string) *arm64.Instruction {
	instructions, err := arm64.NewParser().Parse(raw)
	if err != nil || len(instructions) == 0 {
		return nil
	}
	return instructions[0]
}

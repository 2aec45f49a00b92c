package arm64

import (
	"strconv"
	"strings"

	"github.com/alazlabs/alaz/asmparser"
)

const instructionSize = 4 // fixed 4-byte stride

// AssemblyParser parses a block of AArch64 assembly text. The label table is
// private to one Parse invocation; nothing is shared across calls, so
// concurrent parsers over independent inputs are safe.
type AssemblyParser struct {
	labels map[string]uint64
}

// NewParser returns a fresh assembly parser.
func NewParser() *AssemblyParser {
	return &AssemblyParser{labels: make(map[string]uint64)}
}

// Parse classifies every instruction line in text. The first pass records
// labels against the address of the following instruction; the second pass
// assembles instructions. The first failing line aborts the call with no
// partial result.
func (p *AssemblyParser) Parse(text string) ([]*Instruction, error) {
	address := uint64(0)
	for _, raw := range strings.Split(text, "\n") {
		line := cleanLine(raw)
		if line == "" {
			continue
		}
		if isLabel(line) {
			p.labels[strings.TrimSuffix(line, ":")] = address
		} else {
			address += instructionSize
		}
	}

	var instructions []*Instruction
	address = 0
	for _, raw := range strings.Split(text, "\n") {
		line := cleanLine(raw)
		if line == "" || isLabel(line) {
			continue
		}
		inst, err := p.parseInstruction(line, address)
		if err != nil {
			return nil, err
		}
		instructions = append(instructions, inst)
		address += instructionSize
	}
	return instructions, nil
}

// cleanLine strips comments and surrounding whitespace.
func cleanLine(line string) string {
	if pos := strings.Index(line, "//"); pos >= 0 {
		line = line[:pos]
	} else if pos := strings.IndexByte(line, ';'); pos >= 0 {
		line = line[:pos]
	}
	return strings.TrimSpace(line)
}

// isLabel reports whether the line declares a label: it ends with ':' and has
// no interior whitespace.
func isLabel(line string) bool {
	return strings.HasSuffix(line, ":") && !strings.ContainsAny(line, " \t")
}

func (p *AssemblyParser) parseInstruction(line string, address uint64) (*Instruction, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil, &asmparser.ParseError{Detail: "empty instruction"}
	}

	mnemonic := strings.ToLower(parts[0])
	kind, ok := kindByMnemonic[mnemonic]
	if !ok {
		return nil, &asmparser.InvalidInstructionError{Mnemonic: mnemonic}
	}

	operands, err := p.parseOperands(strings.Join(parts[1:], " "))
	if err != nil {
		return nil, err
	}
	return NewInstruction(kind, operands, address), nil
}

func (p *AssemblyParser) parseOperands(text string) ([]Operand, error) {
	if text == "" {
		return nil, nil
	}
	operands := make([]Operand, 0, 3)
	for _, token := range splitOperands(text) {
		op, err := p.parseOperand(token)
		if err != nil {
			return nil, err
		}
		operands = append(operands, op)
	}
	return operands, nil
}

// splitOperands splits operand text on top-level commas, leaving commas
// inside bracketed memory operands intact.
func splitOperands(text string) []string {
	var tokens []string
	current := strings.Builder{}
	depth := 0
	for _, ch := range text {
		switch ch {
		case '[':
			depth++
			current.WriteRune(ch)
		case ']':
			depth--
			current.WriteRune(ch)
		case ',':
			if depth == 0 {
				if tok := strings.TrimSpace(current.String()); tok != "" {
					tokens = append(tokens, tok)
				}
				current.Reset()
			} else {
				current.WriteRune(ch)
			}
		default:
			current.WriteRune(ch)
		}
	}
	if tok := strings.TrimSpace(current.String()); tok != "" {
		tokens = append(tokens, tok)
	}
	return tokens
}

func (p *AssemblyParser) parseOperand(token string) (Operand, error) {
	token = strings.TrimSpace(token)

	// Memory operand [...].
	if strings.HasPrefix(token, "[") && strings.HasSuffix(token, "]") {
		return p.parseMemoryOperand(token)
	}

	// Immediate #value.
	if strings.HasPrefix(token, "#") {
		value, err := parseImmediate(token[1:])
		if err != nil {
			return Operand{}, err
		}
		return ImmediateOperand(value), nil
	}

	// Known label collected in the first pass.
	if _, ok := p.labels[token]; ok {
		return LabelOperand(token), nil
	}

	// Register name.
	if reg, err := ParseRegister(token); err == nil {
		return RegisterOperand(reg), nil
	}

	// Unresolved symbol or address reference.
	return LabelOperand(token), nil
}

func (p *AssemblyParser) parseMemoryOperand(token string) (Operand, error) {
	inner := token[1 : len(token)-1]

	comma := strings.IndexByte(inner, ',')
	if comma < 0 {
		// Base-only addressing.
		base, err := ParseRegister(strings.TrimSpace(inner))
		if err != nil {
			return Operand{}, err
		}
		return MemoryOperand(MemoryRef{Base: base}), nil
	}

	base, err := ParseRegister(strings.TrimSpace(inner[:comma]))
	if err != nil {
		return Operand{}, err
	}
	rest := strings.TrimSpace(inner[comma+1:])

	if strings.HasPrefix(rest, "#") {
		offset, err := parseImmediate(rest[1:])
		if err != nil {
			return Operand{}, err
		}
		return MemoryOperand(MemoryRef{Base: base, Offset: offset, HasOffset: true}), nil
	}

	index, err := ParseRegister(rest)
	if err != nil {
		return Operand{}, err
	}
	return MemoryOperand(MemoryRef{Base: base, Index: index, HasIndex: true}), nil
}

// parseImmediate parses a hexadecimal (0x), binary (0b) or decimal literal.
func parseImmediate(text string) (int64, error) {
	text = strings.TrimSpace(text)
	switch {
	case strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X"):
		value, err := strconv.ParseInt(text[2:], 16, 64)
		if err != nil {
			return 0, &asmparser.ParseError{Detail: "invalid hexadecimal literal", Err: err}
		}
		return value, nil
	case strings.HasPrefix(text, "0b") || strings.HasPrefix(text, "0B"):
		value, err := strconv.ParseInt(text[2:], 2, 64)
		if err != nil {
			return 0, &asmparser.ParseError{Detail: "invalid binary literal", Err: err}
		}
		return value, nil
	default:
		value, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return 0, &asmparser.ParseError{Detail: "invalid decimal literal", Err: err}
		}
		return value, nil
	}
}

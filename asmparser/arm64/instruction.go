package arm64

import (
	"fmt"
	"strings"
)

// OperandKind tags the variant held by an Operand.
type OperandKind int

const (
	OperandRegister OperandKind = iota
	OperandImmediate
	OperandLabel
	OperandMemory
)

// MemoryRef is a bracketed memory-addressing operand. The pre/post-indexed
// flags are carried for completeness; the recognized bracket syntax never sets
// them.
type MemoryRef struct {
	Base        Register
	Offset      int64
	HasOffset   bool
	Index       Register
	HasIndex    bool
	PreIndexed  bool
	PostIndexed bool
}

// Operand is a tagged operand value: register, immediate, label or memory
// reference. Only the fields selected by Kind are meaningful.
type Operand struct {
	Kind OperandKind
	Reg  Register
	Imm  int64
	Sym  string
	Mem  MemoryRef
}

// RegisterOperand wraps a register identity.
func RegisterOperand(r Register) Operand {
	return Operand{Kind: OperandRegister, Reg: r}
}

// ImmediateOperand wraps a signed immediate value.
func ImmediateOperand(v int64) Operand {
	return Operand{Kind: OperandImmediate, Imm: v}
}

// LabelOperand wraps a branch target or unresolved symbol name.
func LabelOperand(name string) Operand {
	return Operand{Kind: OperandLabel, Sym: name}
}

// MemoryOperand wraps a memory reference.
func MemoryOperand(m MemoryRef) Operand {
	return Operand{Kind: OperandMemory, Mem: m}
}

func (o Operand) String() string {
	switch o.Kind {
	case OperandRegister:
		return o.Reg.String()
	case OperandImmediate:
		return fmt.Sprintf("#%d", o.Imm)
	case OperandLabel:
		return o.Sym
	case OperandMemory:
		var b strings.Builder
		b.WriteByte('[')
		b.WriteString(o.Mem.Base.String())
		if o.Mem.HasOffset {
			fmt.Fprintf(&b, ", #%d", o.Mem.Offset)
		}
		if o.Mem.HasIndex {
			fmt.Fprintf(&b, ", %s", o.Mem.Index.String())
		}
		b.WriteByte(']')
		return b.String()
	}
	return "?"
}

// Instruction is one classified machine instruction. Instances are built by
// AssemblyParser.Parse and not mutated afterwards.
type Instruction struct {
	Kind     Kind
	Operands []Operand
	Address  uint64

	// Encoding and Cond are declared for forward compatibility. The
	// text-based pipeline never populates them: Encoding would come from a
	// binary decoder, Cond from condition-suffixed mnemonics that the
	// mnemonic table currently folds into dedicated kinds.
	Encoding    uint32
	HasEncoding bool
	Cond        Condition
}

// NewInstruction builds an instruction value.
func NewInstruction(kind Kind, operands []Operand, address uint64) *Instruction {
	return &Instruction{Kind: kind, Operands: operands, Address: address}
}

func (i *Instruction) String() string {
	var b strings.Builder
	b.WriteString(string(i.Kind))
	for n, op := range i.Operands {
		if n == 0 {
			b.WriteByte(' ')
		} else {
			b.WriteString(", ")
		}
		b.WriteString(op.String())
	}
	return b.String()
}

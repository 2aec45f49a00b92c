// Package arm64 implements parsing of AArch64 assembly text into a typed
// instruction model.
package arm64

import (
	"strings"

	"github.com/alazlabs/alaz/asmparser"
)

// Register identifies one general-purpose register. Values are a closed set;
// construct them only through ParseRegister.
type Register int

const (
	// 64-bit general-purpose registers.
	X0 Register = iota
	X1
	X2
	X3
	X4
	X5
	X6
	X7
	X8
	X9
	X10
	X11
	X12
	X13
	X14
	X15
	X16
	X17
	X18
	X19
	X20
	X21
	X22
	X23
	X24
	X25
	X26
	X27
	X28
	X29
	X30

	// 32-bit forms, the low halves of the X registers above.
	W0
	W1
	W2
	W3
	W4
	W5
	W6
	W7
	W8
	W9
	W10
	W11
	W12
	W13
	W14
	W15
	W16
	W17
	W18
	W19
	W20
	W21
	W22
	W23
	W24
	W25
	W26
	W27
	W28
	W29
	W30

	// Special registers.
	SP  // stack pointer
	PC  // program counter
	XZR // 64-bit zero register
	WZR // 32-bit zero register

	// Frame pointer and link register aliases. ParseRegister resolves the
	// "fp"/"lr" spellings to X29/X30, so these identities only appear when
	// constructed directly.
	FP
	LR
)

var registerNames = [...]string{
	X0: "X0", X1: "X1", X2: "X2", X3: "X3", X4: "X4",
	X5: "X5", X6: "X6", X7: "X7", X8: "X8", X9: "X9",
	X10: "X10", X11: "X11", X12: "X12", X13: "X13", X14: "X14",
	X15: "X15", X16: "X16", X17: "X17", X18: "X18", X19: "X19",
	X20: "X20", X21: "X21", X22: "X22", X23: "X23", X24: "X24",
	X25: "X25", X26: "X26", X27: "X27", X28: "X28", X29: "X29",
	X30: "X30",
	W0: "W0", W1: "W1", W2: "W2", W3: "W3", W4: "W4",
	W5: "W5", W6: "W6", W7: "W7", W8: "W8", W9: "W9",
	W10: "W10", W11: "W11", W12: "W12", W13: "W13", W14: "W14",
	W15: "W15", W16: "W16", W17: "W17", W18: "W18", W19: "W19",
	W20: "W20", W21: "W21", W22: "W22", W23: "W23", W24: "W24",
	W25: "W25", W26: "W26", W27: "W27", W28: "W28", W29: "W29",
	W30: "W30",
	SP: "SP", PC: "PC", XZR: "XZR", WZR: "WZR", FP: "FP", LR: "LR",
}

// registersByName maps lower-cased spellings to identities, including the
// frame-pointer and link-register aliases.
var registersByName = func() map[string]Register {
	m := make(map[string]Register, len(registerNames)+2)
	for reg, name := range registerNames {
		if Register(reg) == FP || Register(reg) == LR {
			continue // reachable only through the x29/x30 aliases
		}
		m[strings.ToLower(name)] = Register(reg)
	}
	m["fp"] = X29
	m["lr"] = X30
	return m
}()

// ParseRegister resolves a register name to its identity. Resolution is
// case-insensitive; "fp" and "lr" resolve to X29 and X30.
func ParseRegister(name string) (Register, error) {
	reg, ok := registersByName[strings.ToLower(name)]
	if !ok {
		return 0, &asmparser.InvalidRegisterError{Name: name}
	}
	return reg, nil
}

func (r Register) String() string {
	if int(r) < len(registerNames) {
		return registerNames[r]
	}
	return "?"
}

// Is64Bit reports whether the register is a 64-bit form.
func (r Register) Is64Bit() bool {
	switch {
	case r >= X0 && r <= X30:
		return true
	case r == SP || r == PC || r == XZR || r == FP || r == LR:
		return true
	}
	return false
}

// Index returns the register-file index (0-30) shared by a wide form and its
// narrow alias. SP, PC and the zero registers have no index.
func (r Register) Index() (int, bool) {
	switch {
	case r >= X0 && r <= X30:
		return int(r - X0), true
	case r >= W0 && r <= W30:
		return int(r - W0), true
	case r == FP:
		return 29, true
	case r == LR:
		return 30, true
	}
	return 0, false
}

// Condition is an AArch64 condition code.
type Condition string

const (
	EQ Condition = "EQ" // equal (Z == 1)
	NE Condition = "NE" // not equal (Z == 0)
	CS Condition = "CS" // carry set (C == 1)
	CC Condition = "CC" // carry clear (C == 0)
	MI Condition = "MI" // minus (N == 1)
	PL Condition = "PL" // plus (N == 0)
	VS Condition = "VS" // overflow set (V == 1)
	VC Condition = "VC" // overflow clear (V == 0)
	HI Condition = "HI" // unsigned higher (C == 1 && Z == 0)
	LS Condition = "LS" // unsigned lower or same (C == 0 || Z == 1)
	GE Condition = "GE" // signed greater or equal (N == V)
	LT Condition = "LT" // signed less than (N != V)
	GT Condition = "GT" // signed greater than (Z == 0 && N == V)
	LE Condition = "LE" // signed less or equal (Z == 1 || N != V)
	AL Condition = "AL" // always
)

// ConditionFlags holds the NZCV flags.
type ConditionFlags struct {
	N bool
	Z bool
	C bool
	V bool
}

// Holds reports whether the condition is satisfied by the given flags.
func (c Condition) Holds(f ConditionFlags) bool {
	switch c {
	case EQ:
		return f.Z
	case NE:
		return !f.Z
	case CS:
		return f.C
	case CC:
		return !f.C
	case MI:
		return f.N
	case PL:
		return !f.N
	case VS:
		return f.V
	case VC:
		return !f.V
	case HI:
		return f.C && !f.Z
	case LS:
		return !f.C || f.Z
	case GE:
		return f.N == f.V
	case LT:
		return f.N != f.V
	case GT:
		return !f.Z && f.N == f.V
	case LE:
		return f.Z || f.N != f.V
	case AL:
		return true
	}
	return false
}

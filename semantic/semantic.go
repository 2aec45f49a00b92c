// Package semantic renders a classified instruction as a human-readable
// description of its effect.
package semantic

import (
	"fmt"
	"strings"

	"github.com/alazlabs/alaz/asmparser/arm64"
)

// Describe translates one instruction into a descriptive sentence. It is a
// pure function of the instruction value; kinds without an explicit rule fall
// back to a generic description and never fail.
func Describe(inst *arm64.Instruction) string {
	switch inst.Kind {
	case arm64.KindADD:
		return describeTriad(inst, "+", "addition")
	case arm64.KindSUB:
		return describeTriad(inst, "-", "subtraction")
	case arm64.KindMUL:
		return describeTriad(inst, "×", "multiplication")
	case arm64.KindAND:
		return describeTriad(inst, "&", "bitwise and")
	case arm64.KindORR:
		return describeTriad(inst, "|", "bitwise or")
	case arm64.KindEOR:
		return describeTriad(inst, "^", "bitwise exclusive or")
	case arm64.KindLSL:
		return describeTriad(inst, "<<", "logical shift left")
	case arm64.KindLSR:
		return describeTriad(inst, ">>", "logical shift right")
	case arm64.KindASR:
		return describeShiftArithmetic(inst)
	case arm64.KindLDR:
		return describeLoad(inst, "load")
	case arm64.KindLDRB:
		return describeLoad(inst, "load byte")
	case arm64.KindLDRH:
		return describeLoad(inst, "load half-word")
	case arm64.KindLDP:
		return describeLoadPair(inst)
	case arm64.KindSTR:
		return describeStore(inst, "")
	case arm64.KindSTRB:
		return describeStore(inst, " (byte)")
	case arm64.KindSTRH:
		return describeStore(inst, " (half-word)")
	case arm64.KindSTP:
		return describeStorePair(inst)
	case arm64.KindMOV:
		return describeMove(inst, "")
	case arm64.KindMOVZ:
		return describeMove(inst, " (other bits cleared)")
	case arm64.KindMOVK:
		return describeMove(inst, " (other bits preserved)")
	case arm64.KindCMP:
		return describeCompare(inst)
	case arm64.KindB:
		return describeBranch(inst)
	case arm64.KindBL:
		return describeCall(inst)
	case arm64.KindBR:
		return describeRegisterBranch(inst)
	case arm64.KindRET:
		return "return from subroutine"
	case arm64.KindBEQ:
		return "branch if equal (Z=1)"
	case arm64.KindBNE:
		return "branch if not equal (Z=0)"
	case arm64.KindBHI:
		return "branch if unsigned higher (C=1 and Z=0)"
	case arm64.KindBLS:
		return "branch if unsigned lower or same (C=0 or Z=1)"
	case arm64.KindBCC:
		return "branch if carry clear (C=0)"
	case arm64.KindBGE:
		return "branch if signed greater or equal (N=V)"
	case arm64.KindBLT:
		return "branch if signed less than (N!=V)"
	case arm64.KindBGT:
		return "branch if signed greater than (Z=0 and N=V)"
	case arm64.KindBLE:
		return "branch if signed less or equal (Z=1 or N!=V)"
	case arm64.KindCBZ:
		return describeCompareBranch(inst, "==")
	case arm64.KindCBNZ:
		return describeCompareBranch(inst, "!=")
	case arm64.KindNOP:
		return "no operation"
	default:
		return fmt.Sprintf("%s instruction", inst.Kind)
	}
}

func describeTriad(inst *arm64.Instruction, operator, fallback string) string {
	if len(inst.Operands) < 3 {
		return fallback
	}
	return fmt.Sprintf("%s = %s %s %s",
		operandName(inst.Operands[0]),
		operandName(inst.Operands[1]),
		operator,
		operandName(inst.Operands[2]))
}

func describeShiftArithmetic(inst *arm64.Instruction) string {
	if len(inst.Operands) < 3 {
		return "arithmetic shift right"
	}
	return fmt.Sprintf("%s = %s >> %s (arithmetic)",
		operandName(inst.Operands[0]),
		operandName(inst.Operands[1]),
		operandName(inst.Operands[2]))
}

func describeLoad(inst *arm64.Instruction, verb string) string {
	if len(inst.Operands) < 2 {
		return verb + " from memory"
	}
	return fmt.Sprintf("from %s %s into %s",
		memoryDescription(inst.Operands[1]),
		verb,
		operandName(inst.Operands[0]))
}

func describeLoadPair(inst *arm64.Instruction) string {
	if len(inst.Operands) < 3 {
		return "load a register pair from memory"
	}
	return fmt.Sprintf("from %s load into %s, %s",
		memoryDescription(inst.Operands[2]),
		operandName(inst.Operands[0]),
		operandName(inst.Operands[1]))
}

func describeStore(inst *arm64.Instruction, note string) string {
	if len(inst.Operands) < 2 {
		return "store to memory"
	}
	return fmt.Sprintf("store %s%s into %s",
		operandName(inst.Operands[0]),
		note,
		memoryDescription(inst.Operands[1]))
}

func describeStorePair(inst *arm64.Instruction) string {
	if len(inst.Operands) < 3 {
		return "store a register pair to memory"
	}
	return fmt.Sprintf("store %s, %s into %s",
		operandName(inst.Operands[0]),
		operandName(inst.Operands[1]),
		memoryDescription(inst.Operands[2]))
}

func describeMove(inst *arm64.Instruction, note string) string {
	if len(inst.Operands) < 2 {
		return "move data"
	}
	return fmt.Sprintf("%s = %s%s",
		operandName(inst.Operands[0]),
		operandName(inst.Operands[1]),
		note)
}

func describeCompare(inst *arm64.Instruction) string {
	if len(inst.Operands) < 2 {
		return "compare"
	}
	return fmt.Sprintf("compare %s and %s (sets flags)",
		operandName(inst.Operands[0]),
		operandName(inst.Operands[1]))
}

func describeBranch(inst *arm64.Instruction) string {
	if len(inst.Operands) == 0 {
		return "unconditional branch"
	}
	return fmt.Sprintf("branch to %s", operandName(inst.Operands[0]))
}

func describeCall(inst *arm64.Instruction) string {
	if len(inst.Operands) == 0 {
		return "call subroutine"
	}
	return fmt.Sprintf("call %s (return address saved)", operandName(inst.Operands[0]))
}

func describeRegisterBranch(inst *arm64.Instruction) string {
	if len(inst.Operands) == 0 {
		return "branch to register address"
	}
	return fmt.Sprintf("branch to the address in %s", operandName(inst.Operands[0]))
}

func describeCompareBranch(inst *arm64.Instruction, relation string) string {
	if len(inst.Operands) < 2 {
		if relation == "==" {
			return "branch if zero"
		}
		return "branch if not zero"
	}
	return fmt.Sprintf("if %s %s 0 branch to %s",
		operandName(inst.Operands[0]),
		relation,
		operandName(inst.Operands[1]))
}

// operandName renders a single operand: registers by name, non-negative
// immediates in hexadecimal, negative immediates in signed decimal.
func operandName(op arm64.Operand) string {
	switch op.Kind {
	case arm64.OperandRegister:
		return op.Reg.String()
	case arm64.OperandImmediate:
		if op.Imm < 0 {
			return fmt.Sprintf("%d", op.Imm)
		}
		return fmt.Sprintf("0x%x", op.Imm)
	case arm64.OperandLabel:
		return op.Sym
	case arm64.OperandMemory:
		if op.Mem.HasOffset {
			if op.Mem.Offset >= 0 {
				return fmt.Sprintf("[%s+0x%x]", op.Mem.Base, op.Mem.Offset)
			}
			return fmt.Sprintf("[%s-0x%x]", op.Mem.Base, -op.Mem.Offset)
		}
		return fmt.Sprintf("[%s]", op.Mem.Base)
	}
	return "?"
}

// memoryDescription renders a memory operand as "(base [+/- offset] [+
// index])" with the offset magnitude in hexadecimal.
func memoryDescription(op arm64.Operand) string {
	if op.Kind != arm64.OperandMemory {
		return operandName(op)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "(%s", op.Mem.Base)
	if op.Mem.HasOffset {
		if op.Mem.Offset >= 0 {
			fmt.Fprintf(&b, " + 0x%x", op.Mem.Offset)
		} else {
			fmt.Fprintf(&b, " - 0x%x", -op.Mem.Offset)
		}
	}
	if op.Mem.HasIndex {
		fmt.Fprintf(&b, " + %s", op.Mem.Index)
	}
	b.WriteByte(')')
	return b.String()
}

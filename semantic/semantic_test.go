package semantic

import (
	"testing"

	"github.com/alazlabs/alaz/asmparser/arm64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOne(t *testing.T, line string) *arm64.Instruction {
	t.Helper()
	instructions, err := arm64.NewParser().Parse(line)
	require.NoError(t, err)
	require.Len(t, instructions, 1)
	return instructions[0]
}

func TestDescribeArithmetic(t *testing.T) {
	assert.Equal(t, "X0 = X1 + X2", Describe(parseOne(t, "add x0, x1, x2")))
	assert.Equal(t, "X0 = X1 - X2", Describe(parseOne(t, "sub x0, x1, x2")))
	assert.Equal(t, "X0 = X1 × X2", Describe(parseOne(t, "mul x0, x1, x2")))
	assert.Equal(t, "W0 = W1 & W2", Describe(parseOne(t, "and w0, w1, w2")))
	assert.Equal(t, "X0 = X1 | X2", Describe(parseOne(t, "orr x0, x1, x2")))
	assert.Equal(t, "X0 = X1 ^ X2", Describe(parseOne(t, "eor x0, x1, x2")))
}

func TestDescribeShifts(t *testing.T) {
	assert.Equal(t, "X0 = X1 << 0x4", Describe(parseOne(t, "lsl x0, x1, #4")))
	assert.Equal(t, "X0 = X1 >> 0x4", Describe(parseOne(t, "lsr x0, x1, #4")))
	assert.Equal(t, "X0 = X1 >> 0x4 (arithmetic)", Describe(parseOne(t, "asr x0, x1, #4")))
}

func TestDescribeLoadsAndStores(t *testing.T) {
	assert.Equal(t, "from (SP + 0x8) load into X0", Describe(parseOne(t, "ldr x0, [sp, #8]")))
	assert.Equal(t, "from (X1) load byte into W0", Describe(parseOne(t, "ldrb w0, [x1]")))
	assert.Equal(t, "from (X1 + 0x2) load half-word into W0", Describe(parseOne(t, "ldrh w0, [x1, #2]")))
	assert.Equal(t, "from (SP + 0x10) load into X29, X30", Describe(parseOne(t, "ldp x29, x30, [sp, #16]")))

	assert.Equal(t, "store X0 into (SP + 0x8)", Describe(parseOne(t, "str x0, [sp, #8]")))
	assert.Equal(t, "store W0 (byte) into (X1)", Describe(parseOne(t, "strb w0, [x1]")))
	assert.Equal(t, "store W0 (half-word) into (X1)", Describe(parseOne(t, "strh w0, [x1]")))
	assert.Equal(t, "store X29, X30 into (SP - 0x20)", Describe(parseOne(t, "stp x29, x30, [sp, #-32]")))
}

func TestDescribeMoves(t *testing.T) {
	assert.Equal(t, "X0 = 0x1", Describe(parseOne(t, "mov x0, #1")))
	assert.Equal(t, "X0 = -4", Describe(parseOne(t, "mov x0, #-4")))
	assert.Equal(t, "X0 = 0x1234 (other bits cleared)", Describe(parseOne(t, "movz x0, #0x1234")))
	assert.Equal(t, "X0 = 0x5678 (other bits preserved)", Describe(parseOne(t, "movk x0, #0x5678")))
}

func TestDescribeCompare(t *testing.T) {
	assert.Equal(t, "compare X0 and 0xa (sets flags)", Describe(parseOne(t, "cmp x0, #10")))
}

func TestDescribeBranches(t *testing.T) {
	assert.Equal(t, "branch to done", Describe(parseOne(t, "b done")))
	assert.Equal(t, "call printf (return address saved)", Describe(parseOne(t, "bl printf")))
	assert.Equal(t, "branch to the address in X0", Describe(parseOne(t, "br x0")))
	assert.Equal(t, "return from subroutine", Describe(parseOne(t, "ret")))
}

func TestDescribeConditionalBranches(t *testing.T) {
	assert.Equal(t, "branch if equal (Z=1)", Describe(parseOne(t, "b.eq done")))
	assert.Equal(t, "branch if not equal (Z=0)", Describe(parseOne(t, "b.ne done")))
	assert.Equal(t, "branch if unsigned higher (C=1 and Z=0)", Describe(parseOne(t, "b.hi done")))
	assert.Equal(t, "branch if carry clear (C=0)", Describe(parseOne(t, "b.cc done")))
	// The alias spelling renders the same canned text.
	assert.Equal(t, Describe(parseOne(t, "b.cc done")), Describe(parseOne(t, "b.lo done")))
}

func TestDescribeCompareAndBranch(t *testing.T) {
	assert.Equal(t, "if X0 == 0 branch to done", Describe(parseOne(t, "cbz x0, done")))
	assert.Equal(t, "if X0 != 0 branch to retry", Describe(parseOne(t, "cbnz x0, retry")))
}

func TestDescribeFallback(t *testing.T) {
	// Kinds without an explicit rule render generically, never an error.
	assert.Equal(t, "SDIV instruction", Describe(parseOne(t, "sdiv x0, x1, x2")))
	assert.Equal(t, "AESE instruction", Describe(parseOne(t, "aese v0.16b, v1.16b")))
}

func TestDescribeIsPure(t *testing.T) {
	inst := parseOne(t, "add x0, x1, x2")
	first := Describe(inst)
	second := Describe(inst)
	assert.Equal(t, first, second)
	assert.Equal(t, arm64.KindADD, inst.Kind)
}

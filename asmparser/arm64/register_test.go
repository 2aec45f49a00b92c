package arm64

import (
	"errors"
	"testing"

	"github.com/alazlabs/alaz/asmparser"
	"github.com/stretchr/testify/assert"
)

func TestParseRegister(t *testing.T) {
	reg, err := ParseRegister("x0")
	assert.NoError(t, err)
	assert.Equal(t, X0, reg)

	reg, err = ParseRegister("w15")
	assert.NoError(t, err)
	assert.Equal(t, W15, reg)

	reg, err = ParseRegister("sp")
	assert.NoError(t, err)
	assert.Equal(t, SP, reg)

	// Frame pointer and link register resolve to their X aliases.
	reg, err = ParseRegister("fp")
	assert.NoError(t, err)
	assert.Equal(t, X29, reg)

	reg, err = ParseRegister("lr")
	assert.NoError(t, err)
	assert.Equal(t, X30, reg)

	_, err = ParseRegister("invalid")
	assert.Error(t, err)
	var regErr *asmparser.InvalidRegisterError
	assert.True(t, errors.As(err, &regErr))
	assert.Equal(t, "invalid", regErr.Name)
}

func TestParseRegisterCaseInsensitive(t *testing.T) {
	for _, spelling := range []string{"x19", "X19", "x19"} {
		reg, err := ParseRegister(spelling)
		assert.NoError(t, err)
		assert.Equal(t, X19, reg)
	}

	reg, err := ParseRegister("XZR")
	assert.NoError(t, err)
	assert.Equal(t, XZR, reg)

	reg, err = ParseRegister("Wzr")
	assert.NoError(t, err)
	assert.Equal(t, WZR, reg)
}

func TestIs64Bit(t *testing.T) {
	assert.True(t, X0.Is64Bit())
	assert.False(t, W0.Is64Bit())
	assert.True(t, SP.Is64Bit())
	assert.True(t, XZR.Is64Bit())
	assert.False(t, WZR.Is64Bit())
}

func TestRegisterIndex(t *testing.T) {
	// A wide form and its narrow form share the same index.
	for i := 0; i <= 30; i++ {
		wide, ok := (X0 + Register(i)).Index()
		assert.True(t, ok)
		narrow, ok := (W0 + Register(i)).Index()
		assert.True(t, ok)
		assert.Equal(t, i, wide)
		assert.Equal(t, i, narrow)
	}

	idx, ok := FP.Index()
	assert.True(t, ok)
	assert.Equal(t, 29, idx)

	idx, ok = LR.Index()
	assert.True(t, ok)
	assert.Equal(t, 30, idx)

	for _, reg := range []Register{SP, PC, XZR, WZR} {
		_, ok := reg.Index()
		assert.False(t, ok, "%s should have no index", reg)
	}
}

func TestConditionHolds(t *testing.T) {
	flags := ConditionFlags{Z: true}
	assert.True(t, EQ.Holds(flags))
	assert.False(t, NE.Holds(flags))

	// Signed greater than: Z == 0 && N == V.
	flags = ConditionFlags{}
	assert.True(t, GT.Holds(flags))

	// Unsigned higher: C == 1 && Z == 0.
	flags = ConditionFlags{C: true}
	assert.True(t, HI.Holds(flags))
	flags.Z = true
	assert.False(t, HI.Holds(flags))

	assert.True(t, AL.Holds(ConditionFlags{}))
}

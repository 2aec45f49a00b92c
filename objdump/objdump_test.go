package objdump

import (
	"errors"
	"testing"

	"github.com/alazlabs/alaz/asmparser"
	"github.com/alazlabs/alaz/asmparser/arm64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleListing = `
sample:     file format elf64-littleaarch64

Disassembly of section .text:

0000000000400594 <foo>:
int add(int a, int b)
{
   400594:	d100c3ff 	sub sp, sp, #0x30
   400598:	f90007e0 	str x0, [sp, #8]
	return a + b;
   40059c:	8b010000 	add x0, x0, x1
   4005a0:	d65f03c0 	ret

00000000004005a4 <bar>:
   4005a4:	d503201f 	nop

Disassembly of section .fini:

00000000004005a8 <foo>:
   4005a8:	d65f03c0 	ret
`

func TestFindFunction(t *testing.T) {
	parser := NewDumpParser(sampleListing)

	start, end, err := parser.FindFunction("foo")
	require.NoError(t, err)

	// The boundary ends strictly before the <bar>: header.
	assert.Equal(t, "0000000000400594 <foo>:", parser.lines[start])
	for i := start; i <= end; i++ {
		assert.NotContains(t, parser.lines[i], "<bar>:")
	}
	assert.Contains(t, parser.lines[end+1], "<bar>:")

	// A function followed by a section marker ends before the marker; a
	// trailing function runs to the last line.
	start, end, err = parser.FindFunction("bar")
	require.NoError(t, err)
	assert.Contains(t, parser.lines[start], "<bar>:")
	assert.NotContains(t, parser.lines[end], "Disassembly of section")
}

func TestFindFunctionNotFound(t *testing.T) {
	parser := NewDumpParser(sampleListing)
	_, _, err := parser.FindFunction("missing")
	assert.True(t, errors.Is(err, asmparser.ErrFunctionNotFound))

	// An unlocatable boundary propagates out of extraction too.
	_, err = parser.ExtractFunction("missing")
	assert.True(t, errors.Is(err, asmparser.ErrFunctionNotFound))
}

func TestListFunctions(t *testing.T) {
	parser := NewDumpParser(sampleListing)

	// File order, duplicates included.
	assert.Equal(t, []string{"foo", "bar", "foo"}, parser.ListFunctions())
}

func TestExtractFunction(t *testing.T) {
	parser := NewDumpParser(sampleListing)

	entries, err := parser.ExtractFunction("foo")
	require.NoError(t, err)
	require.Len(t, entries, 4)

	// Context lines before the first instruction are merged into one
	// prologue context attributed to it.
	assert.Equal(t, "int add(int a, int b)", entries[0].Source)
	assert.Equal(t, "400594", entries[0].Address)
	assert.Equal(t, "d100c3ff", entries[0].MachineCode)
	assert.Equal(t, "sub sp, sp, #0x30", entries[0].AsmInstruction)
	require.NotNil(t, entries[0].Parsed)
	assert.Equal(t, arm64.KindSUB, entries[0].Parsed.Kind)

	// The current context sticks until a new context line appears.
	assert.Equal(t, "int add(int a, int b)", entries[1].Source)
	assert.Equal(t, "return a + b;", entries[2].Source)
	assert.Equal(t, "return a + b;", entries[3].Source)

	require.NotNil(t, entries[2].Parsed)
	assert.Equal(t, arm64.KindADD, entries[2].Parsed.Kind)
	require.NotNil(t, entries[3].Parsed)
	assert.Equal(t, arm64.KindRET, entries[3].Parsed.Kind)
}

func TestExtractFunctionMergesPrologue(t *testing.T) {
	listing := `
0000000000400594 <matrix_add>:
void matrix_add(struct Matrix *a,
                struct Matrix *b)
{
   400594:	d100c3ff 	sub sp, sp, #0x30
`
	entries, err := NewDumpParser(listing).ExtractFunction("matrix_add")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t,
		"void matrix_add(struct Matrix *a, <br> struct Matrix *b)",
		entries[0].Source)
}

func TestExtractFunctionBestEffort(t *testing.T) {
	listing := `
0000000000400594 <foo>:
   400594:	00000000 	.inst 0x00000000
   400598:	8b010000 	add x0, x0, x1
`
	entries, err := NewDumpParser(listing).ExtractFunction("foo")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// The unrecognized line is kept, unparsed; extraction continues.
	assert.Nil(t, entries[0].Parsed)
	assert.Equal(t, ".inst 0x00000000", entries[0].AsmInstruction)
	require.NotNil(t, entries[1].Parsed)
	assert.Equal(t, arm64.KindADD, entries[1].Parsed.Kind)
}

func TestExtractFunctionInlineAdvisory(t *testing.T) {
	listing := `
0000000000400594 <foo>:
   400594:	94000012 	bl 4005dc <helper.part.3>
   400598:	d65f03c0 	ret
`
	entries, err := NewDumpParser(listing).ExtractFunction("foo")
	require.NoError(t, err)
	require.Len(t, entries, 3)

	last := entries[len(entries)-1]
	assert.Empty(t, last.Address)
	assert.Empty(t, last.MachineCode)
	assert.Empty(t, last.AsmInstruction)
	assert.Nil(t, last.Parsed)
	assert.Contains(t, last.Source, "helper")
}

func TestExtractFunctionSkipsBanners(t *testing.T) {
	listing := `
0000000000400594 <foo>:
/home/user/src/matrix.c:12
{
#ifdef FAST
ERROR: something
int add(int a, int b)
   400594:	8b010000 	add x0, x0, x1
`
	entries, err := NewDumpParser(listing).ExtractFunction("foo")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "int add(int a, int b)", entries[0].Source)
}

func TestExtractFunctionIdempotent(t *testing.T) {
	parser := NewDumpParser(sampleListing)
	first, err := parser.ExtractFunction("foo")
	require.NoError(t, err)
	second, err := parser.ExtractFunction("foo")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

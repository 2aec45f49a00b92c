// Package asmparser holds the shared contract and error taxonomy for
// assembly-text parsers.
package asmparser

import (
	"errors"
	"fmt"
)

// ErrFunctionNotFound is returned when a listing contains no header for the
// requested function name.
var ErrFunctionNotFound = errors.New("function not found")

// ParseError reports malformed instruction text, such as a bad immediate
// literal or an empty instruction line.
type ParseError struct {
	Detail string
	Err    error // underlying conversion error, if any
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Detail, e.Err)
	}
	return fmt.Sprintf("parse error: %s", e.Detail)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidInstructionError reports a mnemonic missing from the instruction
// table.
type InvalidInstructionError struct {
	Mnemonic string
}

func (e *InvalidInstructionError) Error() string {
	return fmt.Sprintf("invalid instruction: %s", e.Mnemonic)
}

// InvalidRegisterError reports a token that was required to name a register
// but does not.
type InvalidRegisterError struct {
	Name string
}

func (e *InvalidRegisterError) Error() string {
	return fmt.Sprintf("invalid register: %s", e.Name)
}

// InvalidOperandError reports operand text matching none of the operand
// grammars.
type InvalidOperandError struct {
	Operand string
}

func (e *InvalidOperandError) Error() string {
	return fmt.Sprintf("invalid operand: %s", e.Operand)
}

// Package disassembler produces disassembly listings from compiled binaries.
package disassembler

import (
	"errors"
)

// Type selects a disassembler backend.
type Type int64

const (
	TypeObjdump Type = iota + 1
)

// Disassembler turns a binary into a source-interleaved disassembly listing.
type Disassembler interface {
	// Disassemble writes the listing for target to outputPath when set and
	// returns the listing text.
	Disassemble(target string, outputPath string) (string, error)
}

// New returns a disassembler of the requested type.
func New(typ Type) (Disassembler, error) {
	switch typ {
	case TypeObjdump:
		return NewObjdump(), nil
	default:
		return nil, errors.New("disassembler not supported")
	}
}

// Package instructiondb provides reference descriptions for AArch64
// mnemonics, loaded from a JSON data file. It is pure data: no decoding logic
// lives here.
package instructiondb

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

//go:embed aarch64.json
var embeddedData []byte

// InstructionDef is one reference entry.
type InstructionDef struct {
	Mnemonic      string   `json:"mnemonic"`
	Name          string   `json:"name"`
	Format        string   `json:"format"`
	Description   string   `json:"description"`
	FlagsAffected []string `json:"flags_affected"`
	Example       string   `json:"example"`
}

// Database is the instruction reference set, keyed case-insensitively by
// mnemonic.
type Database struct {
	InstructionSet string
	byMnemonic     map[string]InstructionDef
}

type databaseFile struct {
	InstructionSet string                      `json:"instruction_set"`
	Categories     map[string][]InstructionDef `json:"categories"`
}

// LoadEmbedded builds the database from the JSON file compiled into the
// binary.
func LoadEmbedded() (*Database, error) {
	return decode(embeddedData)
}

// LoadFromFile builds the database from an external JSON file.
func LoadFromFile(path string) (*Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read instruction database: %w", err)
	}
	return decode(data)
}

func decode(data []byte) (*Database, error) {
	var file databaseFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse instruction database: %w", err)
	}

	db := &Database{
		InstructionSet: file.InstructionSet,
		byMnemonic:     make(map[string]InstructionDef),
	}
	for _, defs := range file.Categories {
		for _, def := range defs {
			db.byMnemonic[strings.ToLower(def.Mnemonic)] = def
		}
	}
	return db, nil
}

// Find looks up the reference entry for a mnemonic, case-insensitively.
func (db *Database) Find(mnemonic string) (InstructionDef, bool) {
	def, ok := db.byMnemonic[strings.ToLower(mnemonic)]
	return def, ok
}

// Mnemonics returns all known mnemonics, sorted.
func (db *Database) Mnemonics() []string {
	names := make([]string, 0, len(db.byMnemonic))
	for name := range db.byMnemonic {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of reference entries.
func (db *Database) Count() int {
	return len(db.byMnemonic)
}

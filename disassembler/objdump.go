package disassembler

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Objdump shells out to objdump to produce a source-interleaved listing.
type Objdump struct{}

func NewObjdump() *Objdump {
	return &Objdump{}
}

// Disassemble runs objdump over the target binary. The -S and -l flags
// interleave the original source and file:line markers that the listing
// parser expects.
func (o *Objdump) Disassemble(target string, outputPath string) (string, error) {
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return "", fmt.Errorf("failed to resolve target path: %w", err)
	}

	//nolint:gosec
	cmd := exec.Command("objdump", "-d", "-S", "-l", absTarget)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("failed to disassemble binary: %w\nOutput:\n%s", err, string(output))
	}

	if outputPath != "" {
		absOutputPath, err := filepath.Abs(outputPath)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path of output file: %w", err)
		}
		if err := os.WriteFile(absOutputPath, output, 0600); err != nil {
			return "", fmt.Errorf("failed to write to output file: %w", err)
		}
	}
	return string(output), nil
}

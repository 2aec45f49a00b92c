// Package profile loads the analysis profile describing how dump files are
// named and how reports are rendered.
package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AnalysisProfile configures one analysis run.
type AnalysisProfile struct {
	Arch              string   `yaml:"arch"`
	OptLevels         []string `yaml:"opt_levels"`          // optimization-level suffixes, e.g. O0, O1, O2
	DumpSuffix        string   `yaml:"dump_suffix"`         // file extension of dump files
	SourceColumnWidth int      `yaml:"source_column_width"` // truncation width of the source column
}

// Default returns the profile used when no file is supplied.
func Default() *AnalysisProfile {
	return &AnalysisProfile{
		Arch:              "arm64",
		OptLevels:         []string{"O0", "O1", "O2"},
		DumpSuffix:        ".dump",
		SourceColumnWidth: 80,
	}
}

// LoadProfile loads an analysis profile from a YAML file. Missing fields keep
// their defaults.
func LoadProfile(filename string) (*AnalysisProfile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile: %w", err)
	}

	profile := Default()
	if err := yaml.Unmarshal(data, profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	return profile, nil
}

// DumpFile returns the dump file name for a prefix and optimization level,
// e.g. ("spark", "O2") -> "spark_O2.dump".
func (p *AnalysisProfile) DumpFile(prefix, level string) string {
	return fmt.Sprintf("%s_%s%s", prefix, level, p.DumpSuffix)
}

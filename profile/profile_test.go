package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	prof := Default()
	assert.Equal(t, "arm64", prof.Arch)
	assert.Equal(t, []string{"O0", "O1", "O2"}, prof.OptLevels)
	assert.Equal(t, ".dump", prof.DumpSuffix)
}

func TestLoadProfile(t *testing.T) {
	content := `
arch: arm64
opt_levels: ["O0", "O3"]
source_column_width: 40
`
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	prof, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"O0", "O3"}, prof.OptLevels)
	assert.Equal(t, 40, prof.SourceColumnWidth)

	// Unset fields keep their defaults.
	assert.Equal(t, ".dump", prof.DumpSuffix)
}

func TestLoadProfileMissingFile(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDumpFile(t *testing.T) {
	prof := Default()
	assert.Equal(t, "spark_O2.dump", prof.DumpFile("spark", "O2"))
}

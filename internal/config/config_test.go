package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_MatchesToolRanges(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 10.0, cfg.Foundation.Diameter)
	assert.Equal(t, 0.8, cfg.Foundation.WallThickness)
	assert.Equal(t, IntRange{Min: 4, Max: 24}, cfg.Inputs.TendonCount)
	assert.Equal(t, Range{Min: 100, Max: 300}, cfg.Inputs.TendonDiameter)
	assert.Equal(t, Range{Min: 0.8, Max: 2.0}, cfg.Inputs.ShaftDiameter)
}

func TestRangeClamp(t *testing.T) {
	r := Range{Min: 2, Max: 6}

	assert.Equal(t, 2.0, r.Clamp(1))
	assert.Equal(t, 4.0, r.Clamp(4))
	assert.Equal(t, 6.0, r.Clamp(9))
	assert.True(t, r.Contains(2))
	assert.False(t, r.Contains(6.1))
}

func TestIntRangeClamp(t *testing.T) {
	r := IntRange{Min: 4, Max: 24}

	assert.Equal(t, 4, r.Clamp(1))
	assert.Equal(t, 8, r.Clamp(8))
	assert.Equal(t, 24, r.Clamp(100))
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gofla.toml")
	content := `
[foundation]
diameter = 12.5
wall_thickness = 1.0

[inputs.tendon_count]
min = 6
max = 18
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 12.5, cfg.Foundation.Diameter)
	assert.Equal(t, 1.0, cfg.Foundation.WallThickness)
	assert.Equal(t, IntRange{Min: 6, Max: 18}, cfg.Inputs.TendonCount)

	// Fields absent from the file keep their defaults
	assert.Equal(t, Range{Min: 100, Max: 300}, cfg.Inputs.TendonDiameter)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

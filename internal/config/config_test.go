package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "cod_vm.txt", cfg.Output.Filename)
	assert.True(t, cfg.Output.Color)
	assert.True(t, cfg.Diagnostics.StopOnFirstError)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pvmc.toml")
	contents := `
[output]
filename = "out.asm"
color = false

[diagnostics]
stop_on_first_error = false
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "out.asm", cfg.Output.Filename)
	assert.False(t, cfg.Output.Color)
	assert.False(t, cfg.Diagnostics.StopOnFirstError)
}

func TestLoadInvalidTomlErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pvmc.toml")
	require.NoError(t, os.WriteFile(path, []byte("not valid [[[ toml"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagFixture(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "fixture", RunE: func(*cobra.Command, []string) error { return nil }}
	addCommonFlags(cmd)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return cmd
}

func TestResolveConfig_Defaults(t *testing.T) {
	cmd := newFlagFixture(t)

	cfg, err := resolveConfig(cmd, "", false)
	require.NoError(t, err)
	assert.Equal(t, "clean-modern", cfg.Template)
	assert.Equal(t, "a4", cfg.PaperSize)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.NotEmpty(t, cfg.StateDir)
}

func TestResolveConfig_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"template":"minimal","addr":":9000"}`), 0644))

	cmd := newFlagFixture(t)
	cfg, err := resolveConfig(cmd, path, false)
	require.NoError(t, err)
	assert.Equal(t, "minimal", cfg.Template)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "a4", cfg.PaperSize)
}

func TestResolveConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"template":"minimal"}`), 0644))
	t.Setenv("RESUME_TEMPLATE", "technical")

	cmd := newFlagFixture(t)
	cfg, err := resolveConfig(cmd, path, false)
	require.NoError(t, err)
	assert.Equal(t, "technical", cfg.Template)
}

func TestResolveConfig_FlagOverridesEverything(t *testing.T) {
	t.Setenv("RESUME_STATE_DIR", "/from/env")

	cmd := newFlagFixture(t, "--state-dir", "/from/flag")
	cfg, err := resolveConfig(cmd, "", false)
	require.NoError(t, err)
	assert.Equal(t, "/from/flag", cfg.StateDir)
}

func TestResolveConfig_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"template":"bogus"}`), 0644))

	cmd := newFlagFixture(t)
	_, err := resolveConfig(cmd, path, false)
	assert.Error(t, err)
}

func TestReadInput_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane Smith\n"), 0644))

	text, err := readInput(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith\n", text)
}

func TestReadInput_Missing(t *testing.T) {
	_, err := readInput(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

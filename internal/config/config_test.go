package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"state_dir": "/var/lib/resume-builder",
		"redis_url": "redis://localhost:6379/0",
		"template": "executive",
		"addr": ":9090",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "/var/lib/resume-builder", cfg.StateDir)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, "executive", cfg.Template)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_UnknownTemplate(t *testing.T) {
	cfg := &Config{Template: "fancy"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Template")
}

func TestValidate_UnknownPaperSize(t *testing.T) {
	cfg := &Config{PaperSize: "legal"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "PaperSize")
}

func TestValidate_BadAddr(t *testing.T) {
	cfg := &Config{Addr: "not an address"}

	err := cfg.Validate()
	assert.Error(t, err)
}

func TestValidate_EmptyConfig(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_FullValidConfig(t *testing.T) {
	cfg := &Config{
		StateDir:  "/tmp/state",
		RedisURL:  "redis://localhost:6379",
		Template:  "clean-modern",
		PaperSize: "letter",
		Addr:      "127.0.0.1:8080",
	}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{Template: "minimal"}
	defaults := Default()

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "minimal", merged.Template)
	assert.Equal(t, defaults.StateDir, merged.StateDir)
	assert.Equal(t, defaults.PaperSize, merged.PaperSize)
	assert.Equal(t, ":8080", merged.Addr)
}

func TestMergeWithDefaults_ExplicitWins(t *testing.T) {
	cfg := &Config{
		StateDir:  "/custom",
		RedisURL:  "redis://cache:6379",
		Template:  "creative",
		PaperSize: "letter",
		Addr:      ":3000",
	}

	merged := cfg.MergeWithDefaults(Default())

	assert.Equal(t, "/custom", merged.StateDir)
	assert.Equal(t, "redis://cache:6379", merged.RedisURL)
	assert.Equal(t, "creative", merged.Template)
	assert.Equal(t, "letter", merged.PaperSize)
	assert.Equal(t, ":3000", merged.Addr)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("RESUME_STATE_DIR", "/env/state")
	t.Setenv("REDIS_URL", "redis://env:6379")
	t.Setenv("RESUME_TEMPLATE", "technical")
	t.Setenv("RESUME_ADDR", ":4000")

	cfg := FromEnv()
	assert.Equal(t, "/env/state", cfg.StateDir)
	assert.Equal(t, "redis://env:6379", cfg.RedisURL)
	assert.Equal(t, "technical", cfg.Template)
	assert.Equal(t, ":4000", cfg.Addr)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "clean-modern", cfg.Template)
	assert.Equal(t, "a4", cfg.PaperSize)
	assert.NotEmpty(t, cfg.StateDir)
	assert.NoError(t, cfg.Validate())
}

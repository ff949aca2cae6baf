// Package config provides configuration loading and validation for the CLI
// and server. Values layer in increasing precedence: built-in defaults, a
// JSON config file, environment variables, then CLI flags.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/openresume/resume-builder/internal/storage"
	"github.com/openresume/resume-builder/internal/types"
)

// Config represents the application configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Storage
	StateDir string `json:"state_dir,omitempty"`                          // Directory for file-backed state
	RedisURL string `json:"redis_url,omitempty" validate:"omitempty,uri"` // Redis URL; file storage when empty

	// Rendering
	Template  string `json:"template,omitempty" validate:"omitempty,oneof=clean-modern two-column minimal executive creative technical"`
	PaperSize string `json:"paper_size,omitempty" validate:"omitempty,oneof=a4 letter"`

	// Export
	ChromePath string `json:"chrome_path,omitempty"` // Chrome/Chromium binary for PDF export

	// Server
	Addr string `json:"addr,omitempty" validate:"omitempty,hostname_port"` // Listen address, e.g. ":8080"

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

var validate = validator.New()

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		StateDir:  storage.DefaultStateDir(),
		Template:  string(types.DefaultTemplate),
		PaperSize: string(types.DefaultPaperSize),
		Addr:      ":8080",
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns a Config populated from environment variables. Callers
// that want .env support load it beforehand.
func FromEnv() Config {
	return Config{
		StateDir:   os.Getenv("RESUME_STATE_DIR"),
		RedisURL:   os.Getenv("REDIS_URL"),
		Template:   os.Getenv("RESUME_TEMPLATE"),
		PaperSize:  os.Getenv("RESUME_PAPER_SIZE"),
		ChromePath: os.Getenv("CHROME_PATH"),
		Addr:       os.Getenv("RESUME_ADDR"),
	}
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("config error: field %q failed %q validation", fe.Field(), fe.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from
// defaults. This is used to apply lower-precedence values as defaults for
// CLI flags.
func (c Config) MergeWithDefaults(defaults Config) Config {
	result := c

	if result.StateDir == "" {
		result.StateDir = defaults.StateDir
	}
	if result.RedisURL == "" {
		result.RedisURL = defaults.RedisURL
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.PaperSize == "" {
		result.PaperSize = defaults.PaperSize
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}
	if result.Addr == "" {
		result.Addr = defaults.Addr
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

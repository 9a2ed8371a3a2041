package config

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// DefaultFile is read from the working directory when no file is given.
	DefaultFile = "pitchflow.yaml"
	// DotEnvFile is loaded into the environment before env parsing.
	DotEnvFile = ".env"
	// EnvPrefix scopes the environment overrides, e.g. PITCHFLOW_MODE=json.
	EnvPrefix = "PITCHFLOW_"
)

// Presentation modes.
const (
	ModeText = "text"
	ModeJSON = "json"
	ModeTUI  = "tui"
)

var ErrInvalidConfig = errors.New("invalid configuration")

var (
	validModes  = []string{ModeText, ModeJSON, ModeTUI}
	validStyles = []string{"auto", "dark", "light", "notty"}
)

type Config struct {
	// Tree is the decision tree path: a YAML/JSON file or a Markdown directory.
	Tree   string `koanf:"tree"`
	Mode   string `koanf:"mode"`
	Style  string `koanf:"style"`
	Debug  bool   `koanf:"debug"`
	Banner bool   `koanf:"banner"`
	// MaxInputSize bounds one command line in text mode.
	MaxInputSize int `koanf:"max_input_size"`
}

// Load layers defaults, the YAML file, .env and PITCHFLOW_* variables, in
// increasing precedence. An explicit path must exist; the default file is optional.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", DotEnvFile, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	// Default values
	defaults := map[string]any{
		"mode":   ModeText,
		"style":  "auto",
		"banner": true,
	}
	for key, val := range defaults {
		if !k.Exists(key) {
			if err := k.Set(key, val); err != nil {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	if !slices.Contains(validModes, c.Mode) {
		return fmt.Errorf("%w: mode %q (want %s)", ErrInvalidConfig, c.Mode, strings.Join(validModes, ", "))
	}
	if !slices.Contains(validStyles, c.Style) {
		return fmt.Errorf("%w: style %q (want %s)", ErrInvalidConfig, c.Style, strings.Join(validStyles, ", "))
	}
	if c.MaxInputSize < 0 {
		return fmt.Errorf("%w: max_input_size must not be negative", ErrInvalidConfig)
	}
	return nil
}

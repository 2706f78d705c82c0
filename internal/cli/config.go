package cli

import (
	"bytes"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/fspath"
	"github.com/jmgilman/go/fspath/errors"
)

// Config is the optional YAML configuration file. Command-line flags take
// precedence over every value set here.
type Config struct {
	// Grammar names the path grammar ("posix", "darwin", "windows", "native").
	Grammar string `yaml:"grammar"`

	// LogLevel is a slog level name such as "debug" or "warn".
	LogLevel string `yaml:"log_level"`

	// MaxLinks bounds symbolic link substitutions per resolved path.
	MaxLinks int `yaml:"max_links"`

	// WorkingDir anchors relative paths given to realpath.
	WorkingDir string `yaml:"working_dir"`
}

// LoadConfig reads and validates the configuration file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.FromFS(err, "failed to read config file", path)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, errors.WithContext(err, "path", path)
	}
	return cfg, nil
}

// ParseConfig decodes and validates YAML configuration. Unknown keys are
// rejected. Empty input yields the zero Config.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, errors.CodeInvalidConfig, "failed to parse config file")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every set value is usable.
func (c *Config) Validate() error {
	if c.Grammar != "" {
		if _, err := fspath.ParseGrammar(c.Grammar); err != nil {
			return errors.Wrap(err, errors.CodeInvalidConfig, "invalid grammar")
		}
	}
	if c.LogLevel != "" {
		if _, err := parseLevel(c.LogLevel); err != nil {
			return err
		}
	}
	if c.MaxLinks < 0 {
		return errors.Newf(errors.CodeInvalidConfig, "max_links must not be negative, got %d", c.MaxLinks)
	}
	return nil
}

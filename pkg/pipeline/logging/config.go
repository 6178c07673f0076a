package logging

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

var (
	ErrInvalidLevel  = errors.New("invalid log level")
	ErrInvalidFormat = errors.New("invalid log format")
	ErrInvalidOutput = errors.New("invalid log output")
)

// Config contains logging configuration.
type Config struct {
	Level     string `yaml:"level" mapstructure:"level"`
	Format    string `yaml:"format" mapstructure:"format"`
	Output    string `yaml:"output" mapstructure:"output"`
	NoColor   bool   `yaml:"no_color" mapstructure:"no_color"`
	Timestamp bool   `yaml:"timestamp" mapstructure:"timestamp"`
}

// ApplyDefaults applies default values to logging configuration.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = FormatJSON
	}
	if c.Output == "" {
		c.Output = "stderr"
	}
}

// Validate validates logging configuration.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.Level); err != nil {
		return errors.Wrapf(ErrInvalidLevel, "%q", c.Level)
	}

	switch strings.ToLower(c.Format) {
	case FormatJSON, FormatConsole:
	default:
		return errors.Wrapf(ErrInvalidFormat, "%q", c.Format)
	}

	switch strings.ToLower(c.Output) {
	case "stdout", "stderr":
	default:
		return errors.Wrapf(ErrInvalidOutput, "%q", c.Output)
	}

	return nil
}

func outputWriter(output string) io.Writer {
	if strings.ToLower(output) == "stdout" {
		return os.Stdout
	}

	return os.Stderr
}

// New builds a logger from cfg, after applying defaults and validating it.
func New(cfg Config) (zerolog.Logger, error) {
	cfg.ApplyDefaults()

	err := cfg.Validate()
	if err != nil {
		return zerolog.Nop(), err
	}

	return newLogger(cfg, outputWriter(cfg.Output))
}

func newLogger(cfg Config, wrt io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), errors.Wrapf(ErrInvalidLevel, "%q", cfg.Level)
	}

	if strings.ToLower(cfg.Format) == FormatConsole {
		wrt = zerolog.ConsoleWriter{Out: wrt, NoColor: cfg.NoColor}
	}

	zl := zerolog.New(wrt).Level(level)
	if cfg.Timestamp {
		zl = zl.With().Timestamp().Logger()
	}

	return zl, nil
}

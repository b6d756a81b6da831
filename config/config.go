// Package config holds the settings of the pointmatch command: solver
// tolerance, output precision and format, logging. Values come from
// Default, are overlaid by an optional YAML file and environment, and are
// finally overridden by command-line flags.
package config

import (
	"bytes"
	"math"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pointmatch/hungarian"
	"github.com/katalvlaran/pointmatch/pointio"
)

// ErrInvalid is returned by Validate and Load for out-of-range settings.
var ErrInvalid = errors.New("config: invalid setting")

// EnvLogLevel overrides log_level when set.
const EnvLogLevel = "POINTMATCH_LOG_LEVEL"

// maxPrecision bounds the decimal digits of the printed total.
const maxPrecision = 17

// Config is the on-disk and in-memory settings record.
type Config struct {
	Tolerance       float64 `yaml:"tolerance"`
	FixedTolerance  bool    `yaml:"fixed_tolerance"`
	Precision       int     `yaml:"precision"`
	Format          string  `yaml:"format"`
	LogLevel        string  `yaml:"log_level"`
	CheckInvariants bool    `yaml:"check_invariants"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Tolerance: float64(hungarian.DefaultTolerance),
		Precision: pointio.DefaultPrecision,
		Format:    pointio.FormatText.String(),
		LogLevel:  "info",
	}
}

// Load reads path over the defaults. An empty path yields the defaults;
// a path that does not exist is an error, since it was asked for explicitly.
// The result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "read config")
		}
		if err = cfg.decode(data); err != nil {
			return nil, errors.WithMessagef(err, "config %s", path)
		}
	}
	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		return errors.Wrapf(ErrInvalid, "parse: %v", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() {
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		c.LogLevel = lvl
	}
}

// Validate checks every field and reports the first offender.
func (c *Config) Validate() error {
	if math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0) || c.Tolerance < 0 {
		return errors.Wrapf(ErrInvalid, "tolerance %v", c.Tolerance)
	}
	if c.Precision < 0 || c.Precision > maxPrecision {
		return errors.Wrapf(ErrInvalid, "precision %d outside [0,%d]", c.Precision, maxPrecision)
	}
	if _, err := pointio.ParseFormat(c.Format); err != nil {
		return errors.Wrapf(ErrInvalid, "format %q", c.Format)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(ErrInvalid, "log_level %q", c.LogLevel)
	}

	return nil
}

// OutputFormat returns the parsed Format. Call after Validate.
func (c *Config) OutputFormat() pointio.Format {
	f, _ := pointio.ParseFormat(c.Format)
	return f
}

// Level returns the parsed log level, info if unparsable.
func (c *Config) Level() zapcore.Level {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}

	return lvl
}

// SolverOptions translates the settings into hungarian options.
func (c *Config) SolverOptions(logger *zap.Logger) []hungarian.Option {
	opts := []hungarian.Option{
		hungarian.WithTolerance(c.Tolerance),
		hungarian.WithLogger(logger),
	}
	if c.FixedTolerance {
		opts = append(opts, hungarian.WithFixedTolerance())
	}
	if c.CheckInvariants {
		opts = append(opts, hungarian.WithInvariantChecks())
	}

	return opts
}

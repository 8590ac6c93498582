// Package config loads fileproc settings from the environment.
package config

import (
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/jmgilman/fileproc/errors"
	"github.com/jmgilman/fileproc/logging"
)

// Output selects how the CLI renders outcomes.
type Output string

// Supported outputs.
const (
	OutputText Output = "text"
	OutputJSON Output = "json"
	OutputYAML Output = "yaml"
)

// Config holds settings for the fileproc CLI.
type Config struct {
	LogLevel  string `env:"FILEPROC_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"FILEPROC_LOG_FORMAT" envDefault:"text"`
	Output    Output `env:"FILEPROC_OUTPUT" envDefault:"text"`
	// Save writes processed content to the in-memory store.
	Save bool `env:"FILEPROC_SAVE" envDefault:"true"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	return LoadFrom(nil)
}

// LoadFrom is Load with an explicit environment. A nil map reads the
// process environment.
func LoadFrom(environ map[string]string) (Config, error) {
	cfg, err := Parse(environ)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse reads the environment into a Config without validating field
// values, so callers can apply overrides before calling Validate. Only
// values that cannot be decoded at all (a malformed bool) fail here.
func Parse(environ map[string]string) (Config, error) {
	var cfg Config
	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, errors.Wrap(err, errors.CodeInvalidConfig, "failed to parse environment")
	}
	cfg.Output = Output(strings.ToLower(string(cfg.Output)))
	return cfg, nil
}

// Validate checks that every field holds a supported value.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, errors.CodeInvalidConfig, "invalid log level")
	}
	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		return errors.Wrap(err, errors.CodeInvalidConfig, "invalid log format")
	}
	switch Output(strings.ToLower(string(c.Output))) {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return errors.Newf(errors.CodeInvalidConfig, "invalid output %q: must be text, json or yaml", c.Output)
	}
	return nil
}

// LoggingConfig converts the log settings into a logging.Config.
// It assumes c has been validated.
func (c Config) LoggingConfig() logging.Config {
	level, _ := logging.ParseLevel(c.LogLevel)
	format, _ := logging.ParseFormat(c.LogFormat)
	return logging.Config{Level: level, Format: format}
}

// Package config holds the settings of the protresolver command. Values are
// unmarshalled from Viper, which merges the settings file, the
// PROTRESOLVER_* environment and command line flags (see cmd/protresolver).
package config

import (
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/katalvlaran/proteinresolver/report"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the root-level settings struct.
type Config struct {
	// path to the protein database file
	Database string `mapstructure:"database"`

	// identification files, one run each
	Identifications []string `mapstructure:"identifications"`

	// consensus map files, one run each
	Consensus []string `mapstructure:"consensus"`

	// report destination; empty or "-" is stdout
	Output string `mapstructure:"output"`

	// report format, tsv or yaml
	Format string `mapstructure:"format"`

	// keep only the best-ranked hit of each identification, on by default
	TopHitOnly bool `mapstructure:"top-hit-only"`

	// insert unknown peptides in one batch per run
	BatchInsert bool `mapstructure:"batch-insert"`

	// how many runs are resolved concurrently
	Parallel int `mapstructure:"parallel"`

	// debug, info, warn or error
	LogLevel string `mapstructure:"log-level"`
}

// Defaults registers the default values on v.
func Defaults(v *viper.Viper) {
	v.SetDefault("format", report.FormatTSV)
	v.SetDefault("top-hit-only", true)
	v.SetDefault("parallel", 1)
	v.SetDefault("log-level", "info")
}

// New unmarshals and validates the settings held by v.
func New(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return c, errors.Wrap(err, "config: unable to decode")
	}

	return c, c.Validate()
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if c.Database == "" {
		return errors.Wrap(ErrInvalid, "database is required")
	}
	if len(c.Identifications)+len(c.Consensus) == 0 {
		return errors.Wrap(ErrInvalid, "at least one identification or consensus file is required")
	}
	switch c.Format {
	case report.FormatTSV, report.FormatYAML:
	default:
		return errors.Wrapf(ErrInvalid, "format %q", c.Format)
	}
	if c.Parallel < 1 {
		return errors.Wrapf(ErrInvalid, "parallel %d", c.Parallel)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// SlogLevel returns the configured log level.
func (c Config) SlogLevel() slog.Level {
	l, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}

	return l
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return l, errors.Wrapf(ErrInvalid, "log level %q", s)
	}

	return l, nil
}

package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"

	"github.com/vipcxj/rangekit/internal/output"
	"github.com/vipcxj/rangekit/internal/shell"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "RANGEKIT"

// Default values, kept in sync with the struct tags of Config.
const (
	DefaultMin       = 0
	DefaultMax       = 1000000
	DefaultFormat    = "lines"
	DefaultShell     = "auto"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "pretty"
)

// Config holds the defaults that command-line flags fall back to.
//
// Fields carry no envconfig tag: envconfig also reads the unprefixed name of
// a tagged field, and RANGEKIT_SHELL must never pick up $SHELL.
type Config struct {
	// Env: RANGEKIT_MIN (default: 0)
	Min int `split_words:"true" default:"0"`

	// Env: RANGEKIT_MAX (default: 1000000), exclusive
	Max int `split_words:"true" default:"1000000"`

	// Env: RANGEKIT_FORCE_INCREASING (default: false)
	ForceIncreasing bool `split_words:"true" default:"false"`

	// Env: RANGEKIT_FORMAT (default: lines)
	Format string `split_words:"true" default:"lines"`

	// Env: RANGEKIT_SHELL (default: auto)
	Shell string `split_words:"true" default:"auto"`

	// Env: RANGEKIT_LOG_LEVEL (default: warn)
	LogLevel string `split_words:"true" default:"warn"`

	// Env: RANGEKIT_LOG_FORMAT (default: pretty)
	LogFormat string `split_words:"true" default:"pretty"`
}

// ReadDotEnv returns the variables in the .env file at path. A missing file
// yields no variables.
func ReadDotEnv(path string) (map[string]string, error) {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	return godotenv.Read(path)
}

// Load reads envFile (if present) and then the environment, and validates
// the result. Variables already set in the environment win over envFile.
// The process environment is left as it was found.
func Load(envFile string) (Config, error) {
	vars, err := ReadDotEnv(envFile)
	if err != nil {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}
	restore, err := overlay(vars)
	if err != nil {
		return Config{}, err
	}
	defer restore()

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("process environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// overlay sets every variable in vars that is not already set and returns a
// func that unsets them again.
func overlay(vars map[string]string) (func(), error) {
	var added []string
	restore := func() {
		for _, k := range added {
			_ = os.Unsetenv(k)
		}
	}
	for k, v := range vars {
		if _, ok := os.LookupEnv(k); ok {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			restore()
			return nil, err
		}
		added = append(added, k)
	}
	return restore, nil
}

// Validate rejects an inverted bound and unknown enum names.
func (c Config) Validate() error {
	if c.Min > c.Max {
		return fmt.Errorf("%s_MIN (%d) is greater than %s_MAX (%d)", EnvPrefix, c.Min, EnvPrefix, c.Max)
	}
	if _, err := output.FormatString(c.Format); err != nil {
		return fmt.Errorf("%s_FORMAT: %w", EnvPrefix, err)
	}
	if _, err := shell.ShellTypeString(c.Shell); err != nil {
		return fmt.Errorf("%s_SHELL: %w", EnvPrefix, err)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%s_LOG_LEVEL: %w", EnvPrefix, err)
	}
	switch c.LogFormat {
	case "pretty", "json":
	default:
		return fmt.Errorf("%s_LOG_FORMAT: unknown format %q", EnvPrefix, c.LogFormat)
	}
	return nil
}

// OutputFormat returns Format as an enum. It falls back to lines when the
// config was never validated.
func (c Config) OutputFormat() output.Format {
	f, err := output.FormatString(c.Format)
	if err != nil {
		return output.FormatLines
	}
	return f
}

// ShellType returns Shell as an enum, falling back to auto.
func (c Config) ShellType() shell.ShellType {
	st, err := shell.ShellTypeString(c.Shell)
	if err != nil {
		return shell.ShellTypeAuto
	}
	return st
}

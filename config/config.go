// Package config loads run parameters from defaults, an optional config
// file and LVPAR_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvpar/engine"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Viper keys.
const (
	KeyIterations    = "run.iterations"
	KeyRows          = "run.rows"
	KeyCols          = "run.cols"
	KeyWorkers       = "run.workers"
	KeyStrategy      = "run.strategy"
	KeySharedMapping = "run.shared_mapping"
	KeyLogLevel      = "log.level"
	KeyPrint         = "output.print"
)

// EnvPrefix is the environment prefix; run.workers maps to LVPAR_RUN_WORKERS.
const EnvPrefix = "LVPAR"

// Config holds application configuration.
type Config struct {
	Run    RunConfig
	Log    LogConfig
	Output OutputConfig
}

// RunConfig holds the parameters of one run.
type RunConfig struct {
	Iterations    int
	Rows          int
	Cols          int
	Workers       int
	Strategy      string
	SharedMapping bool `mapstructure:"shared_mapping"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string
}

// OutputConfig holds presentation settings for the CLI.
type OutputConfig struct {
	Print bool // print the initial and final matrices
}

// SetDefaults registers the documented defaults on v.
// Defaults mirror the recommended invocation "5000 10 10 4".
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyIterations, 5000)
	v.SetDefault(KeyRows, 10)
	v.SetDefault(KeyCols, 10)
	v.SetDefault(KeyWorkers, 4)
	v.SetDefault(KeyStrategy, engine.SharedInPlace.String())
	v.SetDefault(KeySharedMapping, false)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyPrint, true)
}

// New returns a viper instance with defaults and environment binding applied.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads an optional config file (any format viper understands) into v and
// unmarshals the result. An empty path skips the file.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	return c, c.Validate()
}

// Validate checks parameter bounds, the strategy name and the log level.
func (c Config) Validate() error {
	var errs []error
	if err := c.Params().Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := engine.ParseStrategy(c.Run.Strategy); err != nil {
		errs = append(errs, err)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log level: %w", err))
	}

	return errors.Join(errs...)
}

// Params converts the run section into engine parameters.
func (c Config) Params() engine.Params {
	return engine.Params{
		Iterations: c.Run.Iterations,
		Rows:       c.Run.Rows,
		Cols:       c.Run.Cols,
		Workers:    c.Run.Workers,
	}
}

// Options converts the run section into engine options.
// Call Validate first; an unknown strategy falls back to SharedInPlace here.
func (c Config) Options() []engine.Option {
	s, _ := engine.ParseStrategy(c.Run.Strategy)
	opts := []engine.Option{engine.WithStrategy(s)}
	if c.Run.SharedMapping {
		opts = append(opts, engine.WithSharedMapping())
	}

	return opts
}

// Package config loads heldkarp settings from defaults, an optional YAML file
// and HELDKARP_* environment variables.
package config

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/katalvlaran/heldkarp/internal/logging"
	"github.com/katalvlaran/heldkarp/tsp"
)

// Default values applied before the config file and environment are read.
const (
	DefaultEngine     = "auto"
	DefaultMaxN       = 25
	DefaultLogLevel   = "info"
	DefaultLogFormat  = logging.FormatText
	DefaultBenchN     = 16
	DefaultBenchCount = 3
	DefaultBenchSeed  = 1
)

// DefaultWorkers is one solve per CPU.
func DefaultWorkers() int { return runtime.NumCPU() }

// Config is the top-level configuration struct.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Engine  string      `mapstructure:"engine"`
	MaxN    int         `mapstructure:"max_n"`
	Workers int         `mapstructure:"workers"`
	Log     LogConfig   `mapstructure:"log"`
	Bench   BenchConfig `mapstructure:"bench"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// BenchConfig drives the bench command.
type BenchConfig struct {
	N     int   `mapstructure:"n"`
	Count int   `mapstructure:"count"`
	Seed  int64 `mapstructure:"seed"`
}

var (
	// ErrInvalidEngine indicates an engine name other than auto, scalar or vector.
	ErrInvalidEngine = errors.New("engine must be auto, scalar or vector")
	// ErrInvalidMaxN indicates a negative size limit.
	ErrInvalidMaxN = errors.New("max_n must be non-negative")
	// ErrInvalidWorkers indicates the workers value is negative.
	ErrInvalidWorkers = errors.New("workers must be non-negative")
	// ErrInvalidLogLevel indicates an unknown slog level name.
	ErrInvalidLogLevel = errors.New("log.level must be debug, info, warn or error")
	// ErrInvalidLogFormat indicates a handler other than text or json.
	ErrInvalidLogFormat = errors.New("log.format must be text or json")
	// ErrInvalidBenchN indicates a bench size below 2.
	ErrInvalidBenchN = errors.New("bench.n must be at least 2")
	// ErrInvalidBenchCount indicates a non-positive repetition count.
	ErrInvalidBenchCount = errors.New("bench.count must be positive")
)

// Validate checks Config invariants and returns the first error found.
func (c *Config) Validate() error {
	if _, err := tsp.ParseEngine(c.Engine); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidEngine, c.Engine)
	}
	if c.MaxN < 0 {
		return ErrInvalidMaxN
	}
	if c.Workers < 0 {
		return ErrInvalidWorkers
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level)
	}
	switch c.Log.Format {
	case "", logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Log.Format)
	}

	return c.validateBench()
}

func (c *Config) validateBench() error {
	if c.Bench.N < 2 {
		return ErrInvalidBenchN
	}
	if c.Bench.Count <= 0 {
		return ErrInvalidBenchCount
	}

	return nil
}

// EngineKind maps the engine name to tsp.Engine. Call Validate first.
func (c *Config) EngineKind() tsp.Engine {
	e, err := tsp.ParseEngine(c.Engine)
	if err != nil {
		return tsp.EngineAuto
	}

	return e
}

// SolverOptions builds tsp.Options from the engine and size settings.
func (c *Config) SolverOptions() tsp.Options {
	opts := tsp.DefaultOptions()
	opts.Engine = c.EngineKind()
	opts.MaxN = c.MaxN

	return opts
}

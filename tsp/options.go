package tsp

import "log/slog"

// Options configures a Solver.
type Options struct {
	// Engine selects the transition engine. Zero value: EngineAuto.
	Engine Engine

	// MaxN rejects instances with more than MaxN vertices (ErrTooLarge).
	// 0 means no limit; the table still has to be addressable.
	MaxN int

	// Logger receives debug records about dispatch and allocation. nil discards.
	Logger *slog.Logger
}

// DefaultOptions returns automatic dispatch, no size limit and no logging.
func DefaultOptions() Options {
	return Options{Engine: EngineAuto}
}

// validateOptions checks Options without looking at the matrix.
func validateOptions(opts Options) error {
	switch opts.Engine {
	case EngineAuto, EngineScalar, EngineVector:
	default:
		return ErrUnknownEngine
	}
	if opts.MaxN < 0 {
		return ErrTooLarge
	}

	return nil
}

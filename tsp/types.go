package tsp

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTooLarge is returned when the 2ⁿ·n table cannot be addressed, or when n
	// exceeds Options.MaxN.
	ErrTooLarge = errors.New("tsp: instance too large")

	// ErrNotComputed is returned by Tour before Compute has run.
	ErrNotComputed = errors.New("tsp: table not computed")

	// ErrUnknownEngine is returned for an Engine value outside the declared set.
	ErrUnknownEngine = errors.New("tsp: unknown engine")

	// ErrDimensionMismatch signals a tour whose length or entries do not fit the matrix.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrStartOutOfRange signals a tour that does not start and end at the start vertex.
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")
)

// Engine names a transition engine.
type Engine uint8

const (
	// EngineAuto lets the dispatcher choose from detected CPU features.
	// Solver.Engine reports EngineAuto when no table work was needed (n ≤ 1).
	EngineAuto Engine = iota
	// EngineScalar forces the portable reference engine.
	EngineScalar
	// EngineVector forces the batched engine (portable lanes without AVX2).
	EngineVector
)

// String returns the engine name as accepted by ParseEngine.
func (e Engine) String() string {
	switch e {
	case EngineAuto:
		return "auto"
	case EngineScalar:
		return "scalar"
	case EngineVector:
		return "vector"
	default:
		return fmt.Sprintf("engine(%d)", uint8(e))
	}
}

// ParseEngine parses auto, scalar or vector (case-insensitive).
func ParseEngine(s string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return EngineAuto, nil
	case "scalar":
		return EngineScalar, nil
	case "vector", "simd":
		return EngineVector, nil
	default:
		return EngineAuto, fmt.Errorf("%w: %q", ErrUnknownEngine, s)
	}
}

// Result holds the outcome of Solve.
type Result struct {
	// Cost is the minimum Hamiltonian cycle cost, saturated at matrix.Unreachable.
	Cost uint32

	// Tour is the sequence of vertex indices, starting and ending at 0.
	// For n vertices, len(Tour) == n+1. Empty for n == 0.
	Tour []int

	// Engine is the engine that filled the table.
	Engine Engine
}

package tsp

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/heldkarp/internal/logging"
	"github.com/katalvlaran/heldkarp/internal/simd"
	"github.com/katalvlaran/heldkarp/matrix"
)

// Solver owns one instance: a private copy of the distance matrix and its DP table.
// A Solver is not safe for concurrent use; independent Solvers share nothing.
type Solver struct {
	n      int
	dist   *matrix.Dense
	dp     *table
	opts   Options
	log    *slog.Logger
	engine Engine
	cost   uint32
	done   bool
}

// New validates opts and m, copies m and allocates the seeded 2ⁿ·n table.
//
// Errors:
//   - matrix.ErrNilMatrix when m is nil.
//   - ErrUnknownEngine for an invalid Options.Engine.
//   - ErrTooLarge when n > Options.MaxN (if set) or the table is not addressable.
//
// Complexity: O(n·2ⁿ) time and space.
func New(m *matrix.Dense, opts Options) (*Solver, error) {
	if m == nil {
		return nil, matrix.ErrNilMatrix
	}
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	n := m.Order()
	if opts.MaxN > 0 && n > opts.MaxN {
		return nil, fmt.Errorf("%w: n=%d exceeds limit %d", ErrTooLarge, n, opts.MaxN)
	}

	dp, err := newTable(n)
	if err != nil {
		return nil, fmt.Errorf("%w: n=%d", err, n)
	}

	log := logging.OrDiscard(opts.Logger)
	log.Debug("dp table allocated",
		"n", n,
		"entries", len(dp.cells),
		"bytes", humanize.IBytes(dp.bytes()),
	)

	return &Solver{
		n:    n,
		dist: m.Clone(),
		dp:   dp,
		opts: opts,
		log:  log,
	}, nil
}

// Order returns the number of vertices.
func (s *Solver) Order() int { return s.n }

// Engine returns the engine that filled the table, or EngineAuto when Compute
// has not run or had no table work to do (n ≤ 1).
func (s *Solver) Engine() Engine { return s.engine }

// Compute returns the minimum cost of a Hamiltonian cycle through vertex 0.
//
// For n ≤ 1 the answer is 0 and the table is untouched. Otherwise one engine
// (see selectEngine) fills the table in a single forward pass and the cycle is
// closed back to 0. The result is cached; later calls return it directly.
//
// Complexity: O(n²·2ⁿ).
func (s *Solver) Compute() uint32 {
	if s.done {
		return s.cost
	}
	s.done = true

	if s.n <= 1 {
		s.cost = 0
		return 0
	}

	// Options were validated in New, so selection cannot fail here.
	eng, _ := selectEngine(s.opts.Engine)
	s.engine = eng.kind()
	s.log.Debug("transition engine selected",
		"requested", s.opts.Engine.String(),
		"engine", s.engine.String(),
		"isa", simd.ActiveISA().String(),
		"n", s.n,
		"symmetric", s.dist.IsSymmetric(),
	)

	start := time.Now()
	eng.fill(s.dp, s.dist)
	s.cost = closeCycle(s.dp, s.dist)
	s.log.Debug("table filled",
		"engine", s.engine.String(),
		"cost", s.cost,
		"elapsed", time.Since(start),
	)

	return s.cost
}

// Solve is a convenience wrapper: New, Compute and Tour in one call.
// The tour is checked with ValidateTour before it is returned.
func Solve(m *matrix.Dense, opts Options) (Result, error) {
	s, err := New(m, opts)
	if err != nil {
		return Result{}, err
	}

	cost := s.Compute()
	tour, err := s.Tour()
	if err != nil {
		return Result{}, err
	}
	if s.n > 0 {
		if err = ValidateTour(tour, s.n, 0); err != nil {
			return Result{}, fmt.Errorf("tsp: reconstructed tour rejected: %w", err)
		}
	}

	return Result{Cost: cost, Tour: tour, Engine: s.engine}, nil
}

// Package tsp - deterministic instance generators.
//
// Used by tests, benchmarks and the bench command.
//
// Goals:
//   - Determinism: same seed ⇒ identical matrices across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe; every call builds its own stream.
package tsp

import (
	"math/rand"

	"github.com/katalvlaran/heldkarp/matrix"
)

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// RandomMatrix builds an n×n cost matrix with zero diagonal and off-diagonal
// costs drawn uniformly from [0, maxCost]. When symmetric is true only the upper
// triangle is drawn and mirrored.
//
// Complexity: O(n²).
func RandomMatrix(n int, maxCost uint32, seed int64, symmetric bool) (*matrix.Dense, error) {
	m, err := matrix.New(n)
	if err != nil {
		return nil, err
	}

	var (
		r    = rngFromSeed(seed)
		d    = m.Data()
		i, j int
		v    uint32
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j || (symmetric && j < i) {
				continue
			}
			v = uint32(r.Int63n(int64(maxCost) + 1))
			d[i*n+j] = v
			if symmetric {
				d[j*n+i] = v
			}
		}
	}

	return m, nil
}

// RandomRelabeling returns a permutation p of 0..n-1 with p[0] == 0, shuffled
// deterministically (Fisher–Yates over positions 1..n-1).
//
// Complexity: O(n).
func RandomRelabeling(n int, seed int64) []int {
	if n <= 0 {
		return []int{}
	}

	var (
		r    = rngFromSeed(seed)
		p    = make([]int, n)
		i, j int
	)
	for i = 0; i < n; i++ {
		p[i] = i
	}
	for i = n - 1; i > 1; i-- {
		j = 1 + r.Intn(i) // j ∈ [1, i]
		p[i], p[j] = p[j], p[i]
	}

	return p
}

// Relabel returns the matrix m' with m'[p[i]][p[j]] = m[i][j]: vertex i is renamed p[i].
//
// Errors:
//   - ErrDimensionMismatch when p is not a permutation of 0..n-1.
//
// Complexity: O(n²).
func Relabel(m *matrix.Dense, p []int) (*matrix.Dense, error) {
	if m == nil {
		return nil, matrix.ErrNilMatrix
	}

	var n = m.Order()
	if len(p) != n {
		return nil, ErrDimensionMismatch
	}
	seen := make([]bool, n)
	for _, v := range p {
		if v < 0 || v >= n || seen[v] {
			return nil, ErrDimensionMismatch
		}
		seen[v] = true
	}

	out, err := matrix.New(n)
	if err != nil {
		return nil, err
	}

	var (
		dst  = out.Data()
		row  []uint32
		i, j int
	)
	for i = 0; i < n; i++ {
		row = m.Row(i)
		for j = 0; j < n; j++ {
			dst[p[i]*n+p[j]] = row[j]
		}
	}

	return out, nil
}

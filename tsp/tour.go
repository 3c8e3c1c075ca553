// Package tsp - tour utilities.
//
// This file reconstructs the optimal tour from a filled table and provides the
// structural and cost checks used to verify it:
//   - Solver.Tour: backtrack dp[full] to a closed tour 0 → … → 0.
//   - ValidateTour: enforce Hamiltonian-cycle invariants.
//   - TourCost: saturating sum of edge costs along a tour.
//
// No logging, no panics on user input - only sentinel errors from types.go.
package tsp

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/heldkarp/matrix"
)

// errBrokenTable means backtracking found no predecessor consistent with a cell.
// It can only happen if the table was not produced by a transition engine.
var errBrokenTable = errors.New("tsp: table inconsistent with distances")

// Tour reconstructs an optimal tour by walking the table backwards from the
// cheapest closing vertex. Ties resolve to the smallest vertex index, so the
// result is deterministic and identical for both engines.
//
// Contract:
//   - Compute must have been called (ErrNotComputed otherwise).
//   - len(tour) == n+1, tour[0] == tour[n] == 0; n == 0 yields an empty tour.
//   - TourCost(dist, tour) == Compute().
//
// Complexity: O(n²) time, O(n) space.
func (s *Solver) Tour() ([]int, error) {
	if !s.done {
		return nil, ErrNotComputed
	}

	var n = s.n
	switch n {
	case 0:
		return []int{}, nil
	case 1:
		return []int{0, 0}, nil
	}

	var (
		d      = s.dist.Data()
		t      = s.dp
		tour   = make([]int, n+1)
		mask   = t.full
		cur    = -1
		best   = matrix.Unreachable
		c      uint32
		i, j   int
		pos    int
		prev   uint
		next   int
		target uint32
	)

	// Closing vertex: the argmin used by closeCycle.
	for i = 1; i < n; i++ {
		c = satAdd(t.at(mask, i), d[i*n])
		if cur < 0 || c < best {
			best = c
			cur = i
		}
	}
	tour[n-1] = cur

	for pos = n - 2; pos >= 1; pos-- {
		prev = mask &^ (1 << cur)
		target = t.at(mask, cur)
		next = -1
		// j == 0 is excluded: dp[prev][0] is Unreachable while prev holds other vertices.
		for j = 1; j < n; j++ {
			if prev&(1<<j) == 0 {
				continue
			}
			if satAdd(t.at(prev, j), d[j*n+cur]) == target {
				next = j
				break
			}
		}
		if next < 0 {
			return nil, errBrokenTable
		}
		tour[pos] = next
		mask = prev
		cur = next
	}
	tour[0] = 0
	tour[n] = 0

	return tour, nil
}

// ValidateTour enforces Hamiltonian-cycle invariants:
//
//	len(tour) == n+1, tour[0]==tour[n]==start,
//	each vertex v∈[0..n-1] appears exactly once in positions [0..n-1].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int, start int) error {
	if n <= 0 {
		return ErrDimensionMismatch
	}
	if len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}
	if tour[0] != start || tour[n] != start {
		return ErrStartOutOfRange
	}

	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// TourCost sums the edge costs tour[i]→tour[i+1] with saturating addition.
//
// Contract:
//   - dist must be non-nil; every index in tour must lie in [0, n).
//   - len(tour) < 2 costs 0 (nothing to traverse).
//
// Complexity: O(len(tour)).
func TourCost(dist *matrix.Dense, tour []int) (uint32, error) {
	if dist == nil {
		return 0, matrix.ErrNilMatrix
	}

	var (
		sum uint32
		c   uint32
		err error
		i   int
	)
	for i = 0; i+1 < len(tour); i++ {
		c, err = dist.At(tour[i], tour[i+1])
		if err != nil {
			return 0, fmt.Errorf("%w: leg %d: %v", ErrDimensionMismatch, i, err)
		}
		sum = satAdd(sum, c)
	}

	return sum, nil
}

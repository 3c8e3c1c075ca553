// Package tsp_test holds helpers shared across *_test.go files in this package.
package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heldkarp/matrix"
	"github.com/katalvlaran/heldkarp/tsp"
)

// allEngines lists every engine a caller can request.
var allEngines = []tsp.Engine{tsp.EngineAuto, tsp.EngineScalar, tsp.EngineVector}

// mustDense builds a matrix from literal rows or fails the test.
func mustDense(t testing.TB, rows [][]uint32) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// zeros returns an n×n all-zero matrix.
func zeros(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.New(n)
	require.NoError(t, err)

	return m
}

// computeWith solves m with the given engine.
func computeWith(t testing.TB, m *matrix.Dense, e tsp.Engine) uint32 {
	t.Helper()
	opts := tsp.DefaultOptions()
	opts.Engine = e
	s, err := tsp.New(m, opts)
	require.NoError(t, err)

	return s.Compute()
}

// bruteForce enumerates every permutation of 1..n-1 with saturating sums.
// It is the independent oracle for small instances (n ≤ 8).
func bruteForce(m *matrix.Dense) uint32 {
	n := m.Order()
	if n <= 1 {
		return 0
	}

	rest := make([]int, 0, n-1)
	for v := 1; v < n; v++ {
		rest = append(rest, v)
	}

	best := matrix.Unreachable
	var permute func(k int)
	permute = func(k int) {
		if k == len(rest) {
			tour := append(append([]int{0}, rest...), 0)
			c, _ := tsp.TourCost(m, tour)
			if c < best {
				best = c
			}
			return
		}
		for i := k; i < len(rest); i++ {
			rest[k], rest[i] = rest[i], rest[k]
			permute(k + 1)
			rest[k], rest[i] = rest[i], rest[k]
		}
	}
	permute(0)

	return best
}

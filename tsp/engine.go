package tsp

import "github.com/katalvlaran/heldkarp/matrix"

// transitionEngine fills every reachable cell of a seeded table.
//
// Contract:
//   - masks are processed in increasing numeric order, so dp[prev] is final
//     whenever dp[mask] reads it (prev < mask);
//   - the result for each cell is min over j ∈ prev of satAdd(dp[prev][j], d(j,i));
//   - implementations must leave bit-identical tables for the same input.
type transitionEngine interface {
	kind() Engine
	fill(t *table, dist *matrix.Dense)
}

// closeCycle returns min over i ≠ 0 of satAdd(dp[full][i], d(i,0)).
// Unreachable is the identity, so an instance with no usable tour yields Unreachable.
//
// Complexity: O(n).
func closeCycle(t *table, dist *matrix.Dense) uint32 {
	var (
		n    = t.n
		d    = dist.Data()
		last = t.row(t.full)
		best = matrix.Unreachable
		c    uint32
		i    int
	)
	for i = 1; i < n; i++ {
		c = satAdd(last[i], d[i*n])
		if c < best {
			best = c
		}
	}

	return best
}

package tsp

import "github.com/katalvlaran/heldkarp/matrix"

// scalarEngine is the reference implementation: one predecessor at a time,
// membership tested per city.
type scalarEngine struct{}

func (scalarEngine) kind() Engine { return EngineScalar }

// fill computes dp[mask][i] = min_{j∈mask\{i}} satAdd(dp[mask\{i}][j], d(j,i)).
//
// Only odd masks are visited: a mask without vertex 0 can never be reached from
// the seed, so its cells stay Unreachable either way. For the same reason i
// starts at 1 (removing vertex 0 leaves such a mask).
//
// Complexity: O(n²·2ⁿ) time, O(1) extra space.
func (scalarEngine) fill(t *table, dist *matrix.Dense) {
	var (
		n     = t.n
		d     = dist.Data()
		cells = t.cells
		mask  uint
		prev  uint
		bit   uint
		base  int
		pbase int
		i, j  int
		best  uint32
		c     uint32
	)
	for mask = 3; mask <= t.full; mask += 2 {
		base = int(mask) * n
		for i = 1; i < n; i++ {
			bit = 1 << i
			if mask&bit == 0 {
				continue // i not in subset
			}
			prev = mask ^ bit // contains vertex 0, never empty
			pbase = int(prev) * n
			best = matrix.Unreachable
			for j = 0; j < n; j++ {
				if prev&(1<<j) == 0 {
					continue // j not in prev
				}
				c = satAdd(cells[pbase+j], d[j*n+i])
				if c < best {
					best = c
				}
			}
			cells[base+i] = best
		}
	}
}

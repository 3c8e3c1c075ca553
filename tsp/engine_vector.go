package tsp

import (
	"github.com/katalvlaran/heldkarp/internal/simd"
	"github.com/katalvlaran/heldkarp/matrix"
)

// vectorEngine restructures the inner reduction: for a fixed (mask, i) the
// predecessors j are consumed simd.Lanes at a time by a min-plus kernel, then a
// scalar tail covers the remaining n mod Lanes cities.
//
// Batches do not test membership. For j ∉ prev the cell dp[prev][j] is never
// written, so it is Unreachable, and satAdd keeps it Unreachable - the identity
// of min. The tail does test membership, matching the scalar engine line by line.
type vectorEngine struct {
	// minPlus is the batch kernel; it must honour the simd.MinPlusSat contract.
	minPlus func(a, b []uint32) uint32
}

func newVectorEngine() vectorEngine {
	return vectorEngine{minPlus: simd.MinPlusSat}
}

func (vectorEngine) kind() Engine { return EngineVector }

// fill walks the same odd masks and endpoints as scalarEngine.fill.
// The transposed matrix makes d(·,i) contiguous so a batch loads both operands
// with unit stride.
//
// Complexity: O(n²·2ⁿ / Lanes) kernel steps + O(n·2ⁿ·Lanes) tail work, O(n²) extra space.
func (e vectorEngine) fill(t *table, dist *matrix.Dense) {
	var (
		n       = t.n
		distT   = dist.Transpose().Data() // distT[i*n+j] == d(j,i)
		cells   = t.cells
		batched = (n / simd.Lanes) * simd.Lanes // 0 when n < Lanes
		mask    uint
		prev    uint
		bit     uint
		i, j    int
		row     []uint32
		col     []uint32
		best    uint32
		c       uint32
	)
	for mask = 3; mask <= t.full; mask += 2 {
		for i = 1; i < n; i++ {
			bit = 1 << i
			if mask&bit == 0 {
				continue
			}
			prev = mask ^ bit
			row = t.row(prev)
			col = distT[i*n : (i+1)*n : (i+1)*n]

			best = e.minPlus(row[:batched], col[:batched])
			for j = batched; j < n; j++ {
				if prev&(1<<j) == 0 {
					continue
				}
				c = satAdd(row[j], col[j])
				if c < best {
					best = c
				}
			}
			cells[int(mask)*n+i] = best
		}
	}
}

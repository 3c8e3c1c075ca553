package tsp

import (
	"math"
	"math/bits"

	"github.com/katalvlaran/heldkarp/matrix"
)

// table is the dp[mask][last] store, flattened row-major: cell(mask, last) = mask*n + last.
//
// Invariants:
//   - cell({0}, 0) == 0 is the only seed; every other cell starts Unreachable.
//   - A cell is written at most once, after every smaller mask is final.
//   - Cells of masks without bit 0, and cells with last == 0 other than the
//     seed, are never written.
type table struct {
	n     int      // number of vertices
	full  uint     // mask with all n bits set
	cells []uint32 // len == 2ⁿ·n
}

// tableSize returns 2ⁿ·n, or ErrTooLarge when the product cannot be indexed
// by int or its byte size overflows.
//
// Complexity: O(1).
func tableSize(n int) (int, error) {
	if n == 0 {
		return 0, nil
	}
	if n < 0 || n >= bits.UintSize-1 {
		return 0, ErrTooLarge
	}
	// 4 bytes per cell must also fit in int.
	var masks = 1 << n
	if masks > math.MaxInt/4/n {
		return 0, ErrTooLarge
	}

	return masks * n, nil
}

// newTable allocates and seeds the table for n vertices.
//
// Complexity: O(n·2ⁿ) time and space.
func newTable(n int) (*table, error) {
	size, err := tableSize(n)
	if err != nil {
		return nil, err
	}

	t := &table{n: n, cells: make([]uint32, size)}
	if n > 0 {
		t.full = uint(1)<<n - 1
	}

	var k int
	for k = range t.cells {
		t.cells[k] = matrix.Unreachable
	}
	if n > 0 {
		t.cells[1*n+0] = 0 // dp[{0}][0]
	}

	return t, nil
}

// at returns dp[mask][last].
func (t *table) at(mask uint, last int) uint32 {
	return t.cells[int(mask)*t.n+last]
}

// row returns the n cells of mask, aliasing the store.
func (t *table) row(mask uint) []uint32 {
	base := int(mask) * t.n

	return t.cells[base : base+t.n : base+t.n]
}

// bytes is the size of the store in bytes.
func (t *table) bytes() uint64 {
	return uint64(len(t.cells)) * 4
}

// TableBytes reports how many bytes a Solver for n vertices allocates for its table.
//
// Errors:
//   - ErrTooLarge when the table cannot be addressed.
func TableBytes(n int) (uint64, error) {
	size, err := tableSize(n)
	if err != nil {
		return 0, err
	}

	return uint64(size) * 4, nil
}

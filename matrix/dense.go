// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Offer no-copy row access for solver hot loops and a transposed copy for
//     column-contiguous access.

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unreachable is the cost that marks a missing or unusable edge.
// It is also the largest representable cost, so saturating sums clamp to it.
const Unreachable uint32 = math.MaxUint32

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a square row-major cost matrix.
//   - n is the order (rows == cols == n).
//   - data is a flat buffer of length n*n (offset = i*n + j).
type Dense struct {
	n    int      // matrix order (>= 0)
	data []uint32 // contiguous row-major storage (len == n*n)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// New creates an n×n zero matrix. A 0×0 matrix is legal: it models the empty instance.
//
// Errors:
//   - ErrBadShape when n < 0.
//
// Complexity: O(n²) time and space.
func New(n int) (*Dense, error) {
	if n < 0 {
		return nil, ErrBadShape
	}

	return &Dense{n: n, data: make([]uint32, n*n)}, nil
}

// FromRows copies rows into a new Dense. Every row must have exactly len(rows) entries.
//
// Errors:
//   - ErrNonSquare when some row length differs from len(rows).
//
// Complexity: O(n²).
func FromRows(rows [][]uint32) (*Dense, error) {
	var (
		n   = len(rows)
		m   *Dense
		err error
		i   int
	)
	m, err = New(n)
	if err != nil {
		return nil, err
	}
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(rows[i]), n, ErrNonSquare)
		}
		copy(m.data[i*n:(i+1)*n], rows[i])
	}

	return m, nil
}

// Order returns n.
func (m *Dense) Order() int { return m.n }

// At returns the cost of edge i→j.
func (m *Dense) At(i, j int) (uint32, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return m.data[i*m.n+j], nil
}

// Set assigns the cost of edge i→j.
func (m *Dense) Set(i, j int, v uint32) error {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	m.data[i*m.n+j] = v

	return nil
}

// Row returns row i as a slice aliasing the backing buffer.
// Writes through the slice mutate the matrix. Returns nil when i is out of range.
//
// Complexity: O(1).
func (m *Dense) Row(i int) []uint32 {
	if i < 0 || i >= m.n {
		return nil
	}

	return m.data[i*m.n : (i+1)*m.n : (i+1)*m.n]
}

// Data exposes the flat row-major buffer. Solvers use it to avoid per-cell bounds checks.
func (m *Dense) Data() []uint32 { return m.data }

// Clone returns an independent deep copy.
func (m *Dense) Clone() *Dense {
	cp := &Dense{n: m.n, data: make([]uint32, len(m.data))}
	copy(cp.data, m.data)

	return cp
}

// Transpose returns a new matrix T with T[i][j] = m[j][i].
// Row i of T lists the costs of every edge that ends at i, contiguously.
//
// Complexity: O(n²).
func (m *Dense) Transpose() *Dense {
	var (
		n    = m.n
		t    = &Dense{n: n, data: make([]uint32, len(m.data))}
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			t.data[j*n+i] = m.data[i*n+j]
		}
	}

	return t
}

// IsSymmetric reports whether m[i][j] == m[j][i] for all i, j.
func (m *Dense) IsSymmetric() bool {
	var (
		n    = m.n
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if m.data[i*n+j] != m.data[j*n+i] {
				return false
			}
		}
	}

	return true
}

// String renders the matrix in the textual protocol layout: one row per line,
// values separated by single spaces.
func (m *Dense) String() string {
	var (
		sb   strings.Builder
		n    = m.n
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatUint(uint64(m.data[i*n+j]), 10))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// SPDX-License-Identifier: MIT

// Package matrix provides the square cost matrix consumed by the TSP solvers.
//
// A Dense stores n×n uint32 costs in a single row-major buffer (offset i*n + j).
// The value Unreachable (math.MaxUint32) marks "no usable edge"; solvers treat it
// as the identity of the minimum and never let a sum exceed it.
//
// Accessors never panic on user input: At and Set return ErrOutOfRange, the
// constructors return ErrBadShape or ErrNonSquare. Hot loops should use Row,
// which hands out the backing slice without copying.
//
// Complexity quicksheet:
//   - New: O(n²) zero-init; At/Set/Row: O(1); FromRows/Clone/Transpose: O(n²).
package matrix

// Package tsp provides an exact Travelling Salesman solver on a complete,
// explicitly weighted graph.
//
// It implements the Held–Karp bitmask dynamic program over uint32 costs:
//
//   - Complexity: O(n²·2ⁿ)
//   - Memory:     O(n·2ⁿ) cells of 4 bytes
//   - Unusable edges are modelled by matrix.Unreachable; every sum saturates
//     at that value instead of wrapping.
//
// Two transition engines fill the table and are interchangeable:
//
//   - scalar: the portable reference, one predecessor city at a time.
//   - vector: the same reduction in batches of simd.Lanes cities plus a scalar
//     tail; it runs on AVX2 when the CPU supports it.
//
// Options.Engine selects one explicitly; EngineAuto picks vector only when the
// hardware accelerates it. Both engines produce bit-identical tables.
//
// Use this package on small instances (n≲25): the table grows as 2ⁿ·n.
package tsp

// Package heldkarp is an exact solver for the travelling salesman problem on
// small dense instances: bitmask dynamic programming over all vertex subsets,
// with the inner min-plus reduction dispatched to AVX2 when the CPU has it.
//
// What is in the box?
//
//   - matrix: square uint32 cost matrix, Unreachable sentinel
//   - tsp: Solver, scalar and vector transition engines, tours
//   - tspio: the line-oriented text protocol, multi-file solving
//   - internal/simd: CPU feature detection and the 8-lane min-plus kernel
//   - cmd/heldkarp: CLI with solve, bench, cpu and version
//
// Guarantees:
//
//   - Both engines fill bit-identical tables, so the answer never depends on
//     the hardware.
//   - Costs saturate at matrix.Unreachable (4294967295) instead of wrapping.
//   - Memory is n·2ⁿ·4 bytes; tsp.Options.MaxN keeps callers honest.
//
// Quick example:
//
//	m, _ := matrix.FromRows([][]uint32{
//		{0, 10, 15},
//		{10, 0, 20},
//		{15, 20, 0},
//	})
//	res, _ := tsp.Solve(m, tsp.DefaultOptions())
//	fmt.Println(res.Cost, res.Tour) // 45 [0 2 1 0]
//
// From a shell:
//
//	printf '3\n0 10 15\n10 0 20\n15 20 0\n' | heldkarp solve
//	45
package heldkarp

// Package tspio adapts the line-oriented text protocol to the tsp solver.
//
// Input:
//
//	n
//	d(0,0) d(0,1) … d(0,n-1)
//	…
//	d(n-1,0) … d(n-1,n-1)
//
// Output is a single line holding the minimum tour cost in decimal, saturated
// at 4294967295 when no finite tour exists. n = 0 answers 0 without reading rows.
//
// Every data line must carry exactly n whitespace-separated tokens; a missing
// line counts as zero tokens. A token that is not an unsigned 32-bit decimal is
// read as matrix.Unreachable rather than rejected.
//
// SolveFiles processes several inputs concurrently; each file is independent.
package tspio

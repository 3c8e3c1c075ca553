// Package simd provides the vectorized min-plus reduction used by the Held-Karp
// transition engines.
//
// # Supported Platforms
//
//   - x86-64: AVX2 (8 × uint32 lanes per 256-bit register)
//   - everything else: portable 8-lane Go kernel
//
// Runtime CPU feature detection selects the implementation once, at package init.
// Set HELDKARP_SIMD=generic to force the portable kernel, or build with
// -tags noasm to drop the assembly entirely.
//
// # Contract
//
// MinPlusSat(a, b) returns min over k of a[k] ⊕ b[k], where ⊕ is unsigned
// 32-bit addition clamped to math.MaxUint32. Callers pass equal-length slices
// whose length is a multiple of Lanes; no other memory layout assumption leaks
// out of this package.
package simd

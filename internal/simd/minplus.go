package simd

import "math"

// Lanes is the number of uint32 values one vector step processes.
const Lanes = 8

// minPlusImpl is replaced at init by the best kernel for the active ISA.
var minPlusImpl = MinPlusSatGeneric

// SatAdd returns a+b clamped to math.MaxUint32.
//
// ^a is the headroom left above a, so min(b, ^a) never overflows when added back.
func SatAdd(a, b uint32) uint32 {
	return a + min(b, ^a)
}

// MinPlusSat returns min over k of SatAdd(a[k], b[k]), or math.MaxUint32 when
// the slices are empty.
//
// SAFETY: len(a) must equal len(b) and be a multiple of Lanes. Violations are
// programmer errors and panic before any vector load happens.
func MinPlusSat(a, b []uint32) uint32 {
	checkShape(a, b)
	if len(a) == 0 {
		return math.MaxUint32
	}

	return minPlusImpl(a, b)
}

// MinPlusSatGeneric is the portable kernel. It keeps Lanes independent
// accumulators, mirroring the register layout of the vector kernels, and folds
// them at the end.
func MinPlusSatGeneric(a, b []uint32) uint32 {
	checkShape(a, b)

	var acc [Lanes]uint32
	for l := range acc {
		acc[l] = math.MaxUint32
	}

	for k := 0; k+Lanes <= len(a); k += Lanes {
		va := (*[Lanes]uint32)(a[k : k+Lanes])
		vb := (*[Lanes]uint32)(b[k : k+Lanes])
		for l := 0; l < Lanes; l++ {
			s := va[l] + min(vb[l], ^va[l])
			if s < acc[l] {
				acc[l] = s
			}
		}
	}

	best := acc[0]
	for l := 1; l < Lanes; l++ {
		if acc[l] < best {
			best = acc[l]
		}
	}

	return best
}

func checkShape(a, b []uint32) {
	if len(a) != len(b) {
		panic("simd: MinPlusSat length mismatch")
	}
	if len(a)%Lanes != 0 {
		panic("simd: MinPlusSat length is not a multiple of Lanes")
	}
}

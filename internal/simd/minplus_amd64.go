//go:build amd64 && !noasm

package simd

// minPlusSatAVX2 reduces n uint32 pairs (n a multiple of 8) starting at a and b.
//
//go:noescape
func minPlusSatAVX2(a, b *uint32, n int) uint32

func minPlusSatAVX2Slice(a, b []uint32) uint32 {
	return minPlusSatAVX2(&a[0], &b[0], len(a))
}

// kernelFor maps an ISA to its MinPlusSat implementation.
func kernelFor(isa ISA) func(a, b []uint32) uint32 {
	if isa == AVX2 {
		return minPlusSatAVX2Slice
	}

	return MinPlusSatGeneric
}

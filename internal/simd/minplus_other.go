//go:build !amd64 || noasm

package simd

// kernelFor maps an ISA to its MinPlusSat implementation.
// Without assembly every ISA resolves to the portable kernel.
func kernelFor(ISA) func(a, b []uint32) uint32 {
	return MinPlusSatGeneric
}

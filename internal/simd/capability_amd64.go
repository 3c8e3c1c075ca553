//go:build amd64 && !noasm

package simd

import "golang.org/x/sys/cpu"

func init() {
	// cpu.X86.HasAVX2 already accounts for OS support of the YMM state.
	hasAVX2 = cpu.X86.HasAVX2
	initCapabilities()
}

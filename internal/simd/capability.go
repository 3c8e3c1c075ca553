package simd

import (
	"os"
	"strings"
)

// EnvOverride names the environment variable that pins the ISA at init.
const EnvOverride = "HELDKARP_SIMD"

// ISA represents a SIMD instruction set architecture.
type ISA uint8

const (
	// Generic represents the pure Go implementation (no SIMD).
	Generic ISA = iota
	// AVX2 represents x86-64 AVX2 (256-bit integer SIMD).
	AVX2
)

// String returns the string representation of an ISA.
func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case AVX2:
		return "avx2"
	default:
		return "unknown"
	}
}

// ParseISA parses a string into an ISA value.
func ParseISA(s string) (ISA, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "avx2":
		return AVX2, true
	default:
		return Generic, false
	}
}

// Package-level state - initialized once at package init.
var (
	// activeISA is the selected SIMD implementation.
	activeISA ISA

	// hasOverride is true if HELDKARP_SIMD selected the ISA.
	hasOverride bool

	// hasAVX2 is set by the amd64 init when the CPU and OS support AVX2.
	hasAVX2 bool
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	activeISA = selectBestISA()

	if override := os.Getenv(EnvOverride); override != "" {
		if isa, ok := ParseISA(override); ok && isISAAvailable(isa) {
			hasOverride = true
			activeISA = isa
		}
		// Unknown or unavailable override: keep auto-detection.
	}

	minPlusImpl = kernelFor(activeISA)
}

// isISAAvailable checks if an ISA is supported on this CPU.
func isISAAvailable(isa ISA) bool {
	switch isa {
	case Generic:
		return true
	case AVX2:
		return hasAVX2
	default:
		return false
	}
}

// selectBestISA chooses the optimal ISA for the current platform.
func selectBestISA() ISA {
	if hasAVX2 {
		return AVX2
	}

	return Generic
}

// ActiveISA returns the currently active ISA.
func ActiveISA() ISA {
	return activeISA
}

// IsOverridden returns true if HELDKARP_SIMD was set to a usable ISA.
func IsOverridden() bool {
	return hasOverride
}

// HasAVX2 returns true if x86-64 AVX2 is available and the assembly kernel is built in.
func HasAVX2() bool {
	return hasAVX2
}

// Accelerated reports whether MinPlusSat runs on vector hardware.
func Accelerated() bool {
	return activeISA != Generic
}

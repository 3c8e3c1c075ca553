package tsp

import "github.com/katalvlaran/heldkarp/matrix"

// satAdd returns a+b, or matrix.Unreachable when the sum would wrap.
// Unreachable is absorbing: satAdd(Unreachable, x) == Unreachable.
func satAdd(a, b uint32) uint32 {
	s := a + b
	if s < a {
		return matrix.Unreachable
	}

	return s
}

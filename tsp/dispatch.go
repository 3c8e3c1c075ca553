package tsp

import "github.com/katalvlaran/heldkarp/internal/simd"

// selectEngine resolves the requested engine against detected CPU features.
//
// Policy:
//   - EngineScalar → scalar.
//   - EngineVector → vector, on portable lanes if the CPU lacks AVX2.
//   - EngineAuto   → vector only when simd reports hardware acceleration.
//
// Complexity: O(1).
func selectEngine(want Engine) (transitionEngine, error) {
	switch want {
	case EngineScalar:
		return scalarEngine{}, nil
	case EngineVector:
		return newVectorEngine(), nil
	case EngineAuto:
		if simd.Accelerated() {
			return newVectorEngine(), nil
		}

		return scalarEngine{}, nil
	default:
		return nil, ErrUnknownEngine
	}
}

package tsp

import (
	"github.com/katalvlaran/heldkarp/internal/simd"
	"github.com/katalvlaran/heldkarp/matrix"
)

// Test-only handles on unexported helpers.
var (
	SatAdd    = satAdd
	TableSize = tableSize
)

// FillTable runs one engine directly and returns the final table and answer.
// portable selects the generic lane kernel for the vector engine, so the
// batch/tail structure can be exercised on hosts without AVX2.
func FillTable(m *matrix.Dense, e Engine, portable bool) ([]uint32, uint32, error) {
	t, err := newTable(m.Order())
	if err != nil {
		return nil, 0, err
	}

	var eng transitionEngine
	switch {
	case e == EngineScalar:
		eng = scalarEngine{}
	case portable:
		eng = vectorEngine{minPlus: simd.MinPlusSatGeneric}
	default:
		eng = newVectorEngine()
	}

	if m.Order() < 2 {
		return t.cells, 0, nil
	}
	eng.fill(t, m)

	return t.cells, closeCycle(t, m), nil
}

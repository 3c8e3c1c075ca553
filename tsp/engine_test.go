package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heldkarp/internal/simd"
	"github.com/katalvlaran/heldkarp/matrix"
	"github.com/katalvlaran/heldkarp/tsp"
)

// requireSameTables runs scalar, dispatched vector and portable vector on m and
// asserts bit-identical tables and answers.
func requireSameTables(t *testing.T, m *matrix.Dense, label string) uint32 {
	t.Helper()

	scalarCells, scalarCost, err := tsp.FillTable(m, tsp.EngineScalar, false)
	require.NoError(t, err)
	vecCells, vecCost, err := tsp.FillTable(m, tsp.EngineVector, false)
	require.NoError(t, err)
	laneCells, laneCost, err := tsp.FillTable(m, tsp.EngineVector, true)
	require.NoError(t, err)

	require.Equal(t, scalarCost, vecCost, "%s: scalar vs %s answer", label, simd.ActiveISA())
	require.Equal(t, scalarCost, laneCost, "%s: scalar vs portable lanes answer", label)
	require.Equal(t, scalarCells, vecCells, "%s: scalar vs %s table", label, simd.ActiveISA())
	require.Equal(t, scalarCells, laneCells, "%s: scalar vs portable lanes table", label)

	return scalarCost
}

func TestEngines_Equivalent_Random(t *testing.T) {
	for n := 2; n <= 14; n++ {
		for _, symmetric := range []bool{true, false} {
			m, err := tsp.RandomMatrix(n, 10_000, int64(100+n), symmetric)
			require.NoError(t, err)
			requireSameTables(t, m, "random")
		}
	}
}

func TestEngines_Equivalent_NearSaturation(t *testing.T) {
	// Costs close to the top of the range make almost every partial path
	// saturate; both engines must clamp identically.
	for _, n := range []int{simd.Lanes - 1, simd.Lanes, simd.Lanes + 1, 2*simd.Lanes - 1} {
		m, err := tsp.RandomMatrix(n, 16, int64(n), false)
		require.NoError(t, err)
		d := m.Data()
		for k := range d {
			if k%(n+1) != 0 { // keep the diagonal at 0
				d[k] = math.MaxUint32/4 + d[k]
			}
		}
		requireSameTables(t, m, "near saturation")
	}
}

func TestEngines_Equivalent_UnreachableCells(t *testing.T) {
	for _, n := range []int{5, simd.Lanes, simd.Lanes + 3} {
		m, err := tsp.RandomMatrix(n, 50, int64(7*n), false)
		require.NoError(t, err)
		d := m.Data()
		for k := range d {
			if k%3 == 1 {
				d[k] = matrix.Unreachable
			}
		}
		requireSameTables(t, m, "unreachable cells")
	}
}

func TestEngines_LaneBoundaries_AllZero(t *testing.T) {
	for _, n := range []int{simd.Lanes - 1, simd.Lanes, simd.Lanes + 1, 2 * simd.Lanes} {
		m := zeros(t, n)
		require.Equal(t, uint32(0), requireSameTables(t, m, "all zero"), "n=%d", n)
		for _, e := range allEngines {
			require.Equal(t, uint32(0), computeWith(t, m, e), "n=%d engine=%s", n, e)
		}
	}
}

func TestEngines_LaneBoundaries_Ring(t *testing.T) {
	// Ring metric d(i,j) = min(|i-j|, n-|i-j|): the optimum is n.
	for _, n := range []int{simd.Lanes - 1, simd.Lanes, simd.Lanes + 1, 2*simd.Lanes - 1, 2 * simd.Lanes} {
		m := zeros(t, n)
		d := m.Data()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				diff := i - j
				if diff < 0 {
					diff = -diff
				}
				d[i*n+j] = uint32(min(diff, n-diff))
			}
		}
		require.Equal(t, uint32(n), requireSameTables(t, m, "ring"), "n=%d", n)
	}
}

func TestCompute_RelabelingInvariance(t *testing.T) {
	for _, n := range []int{4, 6, simd.Lanes, simd.Lanes + 2} {
		m, err := tsp.RandomMatrix(n, 1000, int64(n), true)
		require.NoError(t, err)
		base := computeWith(t, m, tsp.EngineScalar)

		for seed := int64(1); seed <= 4; seed++ {
			p := tsp.RandomRelabeling(n, seed)
			require.Equal(t, 0, p[0])
			relabeled, err := tsp.Relabel(m, p)
			require.NoError(t, err)
			for _, e := range allEngines {
				require.Equal(t, base, computeWith(t, relabeled, e), "n=%d seed=%d engine=%s", n, seed, e)
			}
		}
	}
}

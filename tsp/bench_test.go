// Package tsp_test - benchmarks for the exact solver.
// Scope:
//   - Full solves per engine on random asymmetric instances.
//   - Sizes straddle the lane width so the scalar tail is exercised.
//
// Policy:
//   - Inputs are generated outside the timer with fixed seeds.
package tsp_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/heldkarp/tsp"
)

const benchSeed int64 = 7

func BenchmarkCompute(b *testing.B) {
	for _, n := range []int{9, 12, 16} {
		m, err := tsp.RandomMatrix(n, 1000, benchSeed, false)
		if err != nil {
			b.Fatal(err)
		}
		for _, e := range []tsp.Engine{tsp.EngineScalar, tsp.EngineVector} {
			opts := tsp.DefaultOptions()
			opts.Engine = e
			b.Run(fmt.Sprintf("n=%d/%s", n, e), func(b *testing.B) {
				b.ReportAllocs()
				b.ResetTimer()
				for it := 0; it < b.N; it++ {
					s, err := tsp.New(m, opts)
					if err != nil {
						b.Fatal(err)
					}
					_ = s.Compute()
				}
			})
		}
	}
}

func BenchmarkTour(b *testing.B) {
	m, err := tsp.RandomMatrix(14, 1000, benchSeed, true)
	if err != nil {
		b.Fatal(err)
	}
	s, err := tsp.New(m, tsp.DefaultOptions())
	if err != nil {
		b.Fatal(err)
	}
	s.Compute()

	b.ReportAllocs()
	b.ResetTimer()
	for it := 0; it < b.N; it++ {
		if _, err := s.Tour(); err != nil {
			b.Fatal(err)
		}
	}
}

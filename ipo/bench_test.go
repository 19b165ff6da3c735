package ipo_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/covergen/ipo"
)

// BenchmarkBuild measures full construction; each iteration uses a fresh
// Generator so the cached structure is never reused.
func BenchmarkBuild(b *testing.B) {
	cases := []struct {
		k, s, n int
	}{
		{13, 3, 2},
		{20, 10, 2},
		{10, 4, 3},
	}
	for _, tc := range cases {
		domains := uniform(tc.k, tc.s)
		b.Run(fmt.Sprintf("%d^%d/n=%d", tc.s, tc.k, tc.n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				g, err := ipo.New(domains, tc.n)
				if err != nil {
					b.Fatal(err)
				}
				_ = g.Result()
			}
		})
	}
}

// BenchmarkBuild_Workers compares sequential and parallel candidate evaluation
// on wide domains, where each row evaluates many values.
func BenchmarkBuild_Workers(b *testing.B) {
	domains := uniform(12, 16)
	for _, w := range []int{1, 2, 4} {
		b.Run(fmt.Sprintf("workers=%d", w), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				g, err := ipo.New(domains, 2, ipo.WithWorkers(w))
				if err != nil {
					b.Fatal(err)
				}
				_ = g.Result()
			}
		})
	}
}

// BenchmarkResult measures materialization alone on a built Generator.
func BenchmarkResult(b *testing.B) {
	g, err := ipo.New(uniform(20, 10), 2)
	if err != nil {
		b.Fatal(err)
	}
	_ = g.Result()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Result()
	}
}

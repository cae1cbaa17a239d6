package karmarkarkarp_test

import (
	"testing"

	kk "github.com/jnickg/karmarkar-karp"
	"github.com/jnickg/karmarkar-karp/dataset"
)

// benchmarkKK runs the heuristic over a repeating {1,2,4} corpus of length n
// split k ways. It resets the timer after corpus generation and fails on
// unexpected errors.
func benchmarkKK(b *testing.B, n, k int, opts ...kk.Option) {
	numbers := dataset.Repeat(n, 1, 2, 4)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := kk.KarmarkarKarp(numbers, k, opts...); err != nil {
			b.Fatalf("KarmarkarKarp failed: %v", err)
		}
	}
}

// BenchmarkKarmarkarKarp_SmallK2 benchmarks 256 numbers across 2 buckets.
func BenchmarkKarmarkarKarp_SmallK2(b *testing.B) {
	benchmarkKK(b, 256, 2)
}

// BenchmarkKarmarkarKarp_SmallK6 benchmarks 256 numbers across 6 buckets.
func BenchmarkKarmarkarKarp_SmallK6(b *testing.B) {
	benchmarkKK(b, 256, 6)
}

// BenchmarkKarmarkarKarp_MediumK4 benchmarks 4096 numbers across 4 buckets.
func BenchmarkKarmarkarKarp_MediumK4(b *testing.B) {
	benchmarkKK(b, 4096, 4)
}

// BenchmarkKarmarkarKarp_MediumK4SumsOnly benchmarks the same workload with
// member tracking disabled.
func BenchmarkKarmarkarKarp_MediumK4SumsOnly(b *testing.B) {
	benchmarkKK(b, 4096, 4, kk.WithMemoryMode(kk.MemoryModeSums))
}

// BenchmarkKarmarkarKarp_Uniform benchmarks seeded uniform noise, the
// less structured (and less tie-heavy) workload.
func BenchmarkKarmarkarKarp_Uniform(b *testing.B) {
	numbers := dataset.Uniform(4096, 1_000_000, 42)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := kk.KarmarkarKarp(numbers, 4); err != nil {
			b.Fatalf("KarmarkarKarp failed: %v", err)
		}
	}
}

package dataset

import (
	"math/rand"

	"github.com/jnickg/karmarkar-karp/partition"
)

// Corner-case element weights, matching the classic {1,2,4} workload: light
// and heavy elements whose sums interlock (1+2+4 = 7).
const (
	lightWeight  partition.Number = 1
	mediumWeight partition.Number = 2
	heavyWeight  partition.Number = 4
)

// Repeat returns a sequence of length n cycling through values in order:
// values[0], values[1], ..., values[0], ... Returns nil if n < 1 or no
// values are given.
//
// Repeat(n, 1, 2, 4) reproduces the canonical interlocking workload: any k
// dividing n/len(values) admits a perfectly balanced split.
//
// Complexity: O(n).
func Repeat(n int, values ...partition.Number) []partition.Number {
	if n < 1 || len(values) == 0 {
		return nil
	}

	seq := make([]partition.Number, n)
	for i := range seq {
		seq[i] = values[i%len(values)]
	}

	return seq
}

// SkewLarge returns a sequence of length n holding n-2 heavy elements (4)
// followed by one light (1) and one medium (2) element. Returns nil if
// n < 3.
//
// This is the "lots of large, few small" corner: the heuristic must spread
// the heavy elements first and use the light ones to trim the remainder.
//
// Complexity: O(n).
func SkewLarge(n int) []partition.Number {
	if n < 3 {
		return nil
	}

	seq := make([]partition.Number, 0, n)
	for i := 0; i < n-2; i++ {
		seq = append(seq, heavyWeight)
	}
	seq = append(seq, lightWeight, mediumWeight)

	return seq
}

// SkewSmall returns a sequence of length n holding n-2 light elements (1)
// followed by one medium (2) and one heavy (4) element. Returns nil if
// n < 3.
//
// This is the "lots of small, few large" corner: the few heavy elements
// dominate the spread until enough light ones pile up against them.
//
// Complexity: O(n).
func SkewSmall(n int) []partition.Number {
	if n < 3 {
		return nil
	}

	seq := make([]partition.Number, 0, n)
	for i := 0; i < n-2; i++ {
		seq = append(seq, lightWeight)
	}
	seq = append(seq, mediumWeight, heavyWeight)

	return seq
}

// Uniform returns n values drawn uniformly from [0, max], generated from a
// local rand.Rand seeded with seed, so the sequence is deterministic per
// (n, max, seed). Returns nil if n < 1.
//
// Complexity: O(n).
func Uniform(n int, max partition.Number, seed int64) []partition.Number {
	if n < 1 {
		return nil
	}

	rng := rand.New(rand.NewSource(seed)) // deterministic seed for reproducibility
	seq := make([]partition.Number, n)
	for i := range seq {
		if max == ^partition.Number(0) {
			// Full range: the modulus max+1 would wrap to zero.
			seq[i] = partition.Number(rng.Uint64())
		} else {
			seq[i] = partition.Number(rng.Uint64() % (uint64(max) + 1))
		}
	}

	return seq
}

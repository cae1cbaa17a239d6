// Package karmarkarkarp balances a multiset of non-negative integers across
// k buckets using the Karmarkar-Karp "largest differencing" heuristic,
// generalized from the classic 2-way formulation to k-way partitioning.
//
// 🚀 What is Karmarkar-Karp?
//
//	A greedy heuristic for the NP-hard number-partitioning problem: split
//	numbers into k disjoint subsets whose sums are as close to equal as
//	possible. Instead of exhaustive search it repeatedly combines the two
//	currently most skewed partial solutions, offsetting large buckets with
//	small ones. Typical uses:
//	  • Spreading jobs of known cost across k workers or GPUs
//	  • Splitting datasets into balanced shards
//	  • Multiprocessor scheduling & load balancing
//	  • Test-suite sharding by measured duration
//
// ✨ Key features:
//   - k-way, not just 2-way: one partition of k sorted subsets per candidate
//   - deterministic for a given input (stable sorting, fixed heap layout)
//   - O(n log n + n·k log k) time, O(n·k) memory for n numbers
//   - sums-only mode (MemoryModeSums) for large inputs: O(n + k) memory
//   - pure in-memory value transformation: no goroutines, no locks, no I/O
//
// ⚙️ Usage:
//
//	import (
//	    kk "github.com/jnickg/karmarkar-karp"
//	    "github.com/jnickg/karmarkar-karp/partition"
//	)
//
//	numbers := []partition.Number{8, 7, 6, 5, 4}
//	p, err := kk.KarmarkarKarp(numbers, 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(p.Sums(), p.Difference()) // [16 14] 2
//
// Under the hood, everything is organized in three packages:
//
//	.           — the heuristic driver and its max-heap of partitions
//	partition/  — Subset & Partition value types and their invariants
//	dataset/    — deterministic input generators for tests and benchmarks
//
// The cmd/kkbench command sweeps generated datasets across bucket counts and
// prints the resulting balance as a table.
//
// This is a heuristic: the result is near-balanced in practice but carries
// no optimality guarantee. See dataset/ for adversarial corpora that show
// where the greedy choice falls short.
package karmarkarkarp

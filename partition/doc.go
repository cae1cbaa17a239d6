// Package partition provides the value types behind k-way number
// partitioning: Subset (one bucket of numbers plus its running sum) and
// Partition (a fixed set of k subsets kept sorted by descending sum).
//
// 🚀 What lives here?
//
//	The two building blocks every partitioning heuristic needs:
//	  • Subset    — an owned bucket of numbers; its sum is maintained
//	    incrementally, never recomputed from scratch.
//	  • Partition — exactly k subsets, always ordered by non-increasing
//	    sum, exposing Difference() = largest sum − smallest sum.
//
// ✨ Key guarantees:
//   - Incremental sums: Subset.Sum() is O(1) and always equals Σ numbers.
//   - Sorted invariant: Partition.Subsets() is non-increasing by sum after
//     construction and after every Merge.
//   - Move semantics on Merge: the donor is drained — its numbers and sum
//     are transferred to the receiver and it is left logically empty.
//     A drained Subset/Partition must not be reused.
//   - Sums-only mode (WithSumsOnly) keeps running sums but discards member
//     numbers, for large inputs where only the balance matters.
//
// ⚙️ Usage:
//
//	p, err := partition.New(42, 4) // one singleton + three empty subsets
//	if err != nil { ... }
//	q, _ := partition.New(7, 4)
//	if err := p.Merge(q); err != nil { ... } // q is consumed
//	fmt.Println(p.Difference())
//
// Errors (sentinel):
//
//	– ErrZeroSubsets  if a partition is requested with k < 1.
//	– ErrSizeMismatch if two partitions with different k are merged.
//	– ErrNilPartition if Merge receives a nil partition.
//
// All operations are single-threaded in-memory value transformations;
// the package takes no locks and starts no goroutines.
package partition

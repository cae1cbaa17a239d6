package karmarkarkarp

import (
	"container/heap"

	"github.com/jnickg/karmarkar-karp/partition"
)

// KarmarkarKarp partitions numbers into k subsets with near-equal sums and
// returns the resulting partition. Every input number appears in exactly one
// subset; nothing is dropped or duplicated.
//
// Algorithm (largest differencing, k-way):
//
//  1. Wrap every input number in its own singleton k-way partition.
//  2. Order all partitions in a max-heap by Difference() (spread between
//     their extreme subset sums).
//  3. While more than one partition remains, pop the two with the largest
//     spread and merge the second into the first: the receiver's subsets in
//     descending-sum order absorb the donor's in ascending-sum order, so
//     large buckets are always offset by small ones. Reinsert the result.
//  4. The single survivor is the answer.
//
// Repeatedly combining the two most unbalanced partial solutions is the
// greedy invariant that gives Karmarkar-Karp its near-optimal empirical
// behavior for 2-way partitioning; the subset pairing in Partition.Merge
// generalizes it to k ways.
//
// Preconditions and validation (in order):
//
//  1. numbers must be non-empty (ErrEmptyInput).
//  2. k must be at least 1 (partition.ErrZeroSubsets).
//
// k larger than len(numbers) is legal and leaves surplus subsets empty.
// Ties on Difference() are broken by heap layout, which is not stable:
// which numbers land in which bucket is implementation-defined among tied
// candidates, while the resulting sums are not affected.
//
// Complexity:
//
//   - Time:  O(n log n) heap traffic + O(n·k log k) merge work.
//   - Space: O(n·k) in MemoryModeFull, O(n + k) in MemoryModeSums.
func KarmarkarKarp(numbers []partition.Number, k int, opts ...Option) (*partition.Partition, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the input sequence is non-empty.
	if len(numbers) == 0 {
		return nil, ErrEmptyInput
	}

	// 3) Translate the memory mode into partition construction options.
	var popts []partition.Option
	if cfg.MemoryMode == MemoryModeSums {
		popts = append(popts, partition.WithSumsOnly())
	}

	// 4) One singleton partition per input number. partition.New validates
	//    k ≥ 1, so an invalid k surfaces on the very first number.
	pq := make(partitionPQ, 0, len(numbers))
	for _, n := range numbers {
		p, err := partition.New(n, k, popts...)
		if err != nil {
			return nil, err
		}
		pq = append(pq, p)
	}

	// 5) Establish the max-heap ordering by Difference(). O(n).
	heap.Init(&pq)

	// 6) Main loop: while two or more candidates remain, merge the two most
	//    skewed ones. Each popped partition is exclusively owned here, which
	//    is what makes the in-place merge safe.
	for pq.Len() > 1 {
		largest := heap.Pop(&pq).(*partition.Partition)
		second := heap.Pop(&pq).(*partition.Partition)

		// The largest absorbs the second; all partitions share one k, so a
		// size mismatch is unreachable and reported only as a safety net.
		if err := largest.Merge(second); err != nil {
			return nil, err
		}
		heap.Push(&pq, largest)
	}

	// 7) Exactly one partition remains: the final k-way split.
	return pq[0], nil
}

// partitionPQ is a max-heap of *partition.Partition ordered by Difference()
// descending, so the most unbalanced candidate is always on top. Partitions
// are move-only values; the heap stores pointers and reorders by swapping,
// never by copying subset contents.
type partitionPQ []*partition.Partition

// Len returns the number of partitions in the heap.
func (pq partitionPQ) Len() int { return len(pq) }

// Less reports whether element i has a larger spread than j (max-heap).
func (pq partitionPQ) Less(i, j int) bool { return pq[i].Difference() > pq[j].Difference() }

// Swap swaps two elements in the heap.
func (pq partitionPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *partition.Partition.
func (pq *partitionPQ) Push(x interface{}) { *pq = append(*pq, x.(*partition.Partition)) }

// Pop removes and returns the largest-spread partition from the heap.
// Called by heap.Pop.
func (pq *partitionPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	p := old[n-1]
	*pq = old[:n-1]

	return p
}

package partition

import (
	"sort"
	"strconv"
	"strings"
)

// Partition is one candidate k-way split: a fixed-length sequence of exactly
// k Subsets, kept sorted by non-increasing sum after construction and after
// every Merge. The length is fixed at construction and never changes.
//
// A Partition exclusively owns its subsets. Merging another Partition into
// it transfers ownership of all of the donor's contents and leaves the donor
// drained (move semantics); a drained Partition must not be reused.
type Partition struct {
	subsets  []Subset // invariant: sorted by descending sum
	sumsOnly bool     // when set, subsets carry sums but no member numbers
}

// New builds a partition of k subsets for the given number: position 0
// receives a singleton holding number, positions 1..k-1 start empty. Since
// number ≥ 0, the result is already sorted by descending sum, so the sorted
// invariant holds from construction onward.
//
// Returns ErrZeroSubsets if k < 1.
//
// Complexity: O(k) time and space.
func New(number Number, k int, opts ...Option) (*Partition, error) {
	// 1) Validate the subset count; a partition needs at least one bucket.
	if k < 1 {
		return nil, ErrZeroSubsets
	}

	// 2) Allocate k empty subsets and apply construction options.
	p := &Partition{subsets: make([]Subset, k)}
	for _, opt := range opts {
		opt(p)
	}

	// 3) Seed the first subset with the number. Going through absorb keeps
	//    the sums-only mode honest: in that mode the member itself is not
	//    retained, only its contribution to the sum.
	seed := Singleton(number)
	p.subsets[0].absorb(&seed, !p.sumsOnly)

	return p, nil
}

// Subsets returns the partition's subsets in non-increasing sum order.
// The returned slice is a read-only view into the partition's own storage;
// callers must not modify it or the subsets it holds.
func (p *Partition) Subsets() []Subset { return p.subsets }

// K returns the number of subsets. Fixed at construction. O(1).
func (p *Partition) K() int { return len(p.subsets) }

// Difference returns the spread between the largest and smallest subset
// sums — the quantity the Karmarkar-Karp heuristic minimizes. It relies on
// the sorted invariant, which construction and Merge both maintain. O(1).
func (p *Partition) Difference() Number {
	return p.subsets[0].sum - p.subsets[len(p.subsets)-1].sum
}

// Sums returns the subset sums in non-increasing order, freshly allocated.
// Convenience for harness display and assertions.
func (p *Partition) Sums() []Number {
	sums := make([]Number, len(p.subsets))
	for i := range p.subsets {
		sums[i] = p.subsets[i].sum
	}

	return sums
}

// Merge absorbs other into p. This is the defining heuristic step of k-way
// Karmarkar-Karp: p's subsets in descending-sum order are paired with
// other's subsets in ascending-sum order, so that p's largest subset absorbs
// other's smallest, p's second-largest absorbs other's second-smallest, and
// so on — always offsetting a large bucket with a small one to limit the
// growth of the spread. Afterwards the subsets are re-sorted by descending
// sum, restoring the invariant Difference() depends on.
//
// Merge consumes other: all of its subset contents are transferred and the
// donor must not be reused.
//
// Returns ErrNilPartition if other is nil, ErrSizeMismatch if the two
// partitions do not share the same k. Both are caller contract violations;
// within a single heuristic run every partition shares one k.
//
// Complexity: O(k log k) time for the re-sort, O(1) extra space.
func (p *Partition) Merge(other *Partition) error {
	// 1) Validate the donor.
	if other == nil {
		return ErrNilPartition
	}
	if len(p.subsets) != len(other.subsets) {
		return ErrSizeMismatch
	}

	// 2) Pair descending receiver against ascending donor. Both sides hold
	//    the sorted invariant, so receiver index i (i-th largest) pairs with
	//    donor index k-1-i (i-th smallest).
	k := len(p.subsets)
	for i := range p.subsets {
		p.subsets[i].absorb(&other.subsets[k-1-i], !p.sumsOnly)
	}

	// 3) Restore the sorted invariant. A stable sort keeps the outcome
	//    deterministic when several subsets tie on sum.
	sort.SliceStable(p.subsets, func(i, j int) bool {
		return p.subsets[i].sum > p.subsets[j].sum
	})

	return nil
}

// String renders the partition as "k subsets: [s1],[s2],...,[sk]" where the
// s-values are the subset sums in non-increasing order. Display only.
func (p *Partition) String() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(len(p.subsets)))
	b.WriteString(" subsets: ")
	for i := range p.subsets {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('[')
		b.WriteString(strconv.FormatUint(uint64(p.subsets[i].sum), 10))
		b.WriteByte(']')
	}

	return b.String()
}

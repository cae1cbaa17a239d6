package partition

import (
	"strconv"
	"strings"
)

// Subset is one bucket of a k-way partition: an owned collection of numbers
// plus their running sum. The sum is maintained incrementally on every
// Merge and is never recomputed from scratch, so Sum() is always O(1).
//
// The zero value is a valid empty subset. A Subset grows only by absorbing
// another Subset; it never shrinks, except when it is itself drained as the
// donor of a Merge (move semantics — see Merge).
type Subset struct {
	numbers []Number // members, in absorption order (display only)
	sum     Number   // invariant: sum == Σ numbers (full mode)
}

// NewSubset returns an empty subset with sum 0.
func NewSubset() Subset {
	return Subset{}
}

// Singleton returns a subset holding exactly n, with sum n.
func Singleton(n Number) Subset {
	return Subset{numbers: []Number{n}, sum: n}
}

// Numbers returns the subset's members in absorption order.
// The returned slice is a read-only view into the subset's own storage;
// callers must not modify it. In sums-only mode it is nil.
func (s *Subset) Numbers() []Number { return s.numbers }

// Sum returns the sum of the subset's members. O(1).
func (s *Subset) Sum() Number { return s.sum }

// Len returns the number of members held by the subset. O(1).
func (s *Subset) Len() int { return len(s.numbers) }

// Empty reports whether the subset holds no members and has sum 0.
func (s *Subset) Empty() bool { return len(s.numbers) == 0 && s.sum == 0 }

// Merge absorbs other into s: other's members are appended after s's own
// (receiver first, donor second) and the sums are added. Merge always
// succeeds and consumes other — the donor is drained to an empty subset and
// must not be read afterwards.
func (s *Subset) Merge(other *Subset) {
	s.absorb(other, true)
}

// absorb transfers other's contents into s. When keepNumbers is false the
// member slice is dropped and only the sums are combined (sums-only mode).
// The donor is drained either way so that exactly one live owner of the
// transferred contents remains.
func (s *Subset) absorb(other *Subset, keepNumbers bool) {
	// 1) Combine sums incrementally; this is the invariant-preserving step.
	s.sum += other.sum

	// 2) Transfer membership: receiver's numbers first, then the donor's.
	if keepNumbers {
		s.numbers = append(s.numbers, other.numbers...)
	} else {
		s.numbers = nil
	}

	// 3) Drain the donor. After this point other is logically empty and any
	//    further use of it is a caller bug.
	other.numbers = nil
	other.sum = 0
}

// String renders the subset's members as "[a,b,c]" ("[]" when empty).
// Intended for harness display and debugging only.
func (s Subset) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, n := range s.numbers {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(n), 10))
	}
	b.WriteByte(']')

	return b.String()
}

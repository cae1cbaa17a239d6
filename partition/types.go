// Package partition defines the Number, Subset and Partition types together
// with their sentinel errors and construction options.
//
// Error policy (strict, matching the rest of the module):
//
//   - Only package-level sentinel errors are exposed; callers branch with
//     errors.Is(err, ErrX), never by comparing strings.
//   - Methods attach context via fmt.Errorf("...: %w", ErrX) where useful.
//   - Methods never panic at runtime; validation panics are confined to
//     option constructors (WithX...).
package partition

import "errors"

// Number is the element type being partitioned: a non-negative 64-bit value.
// Sums of subsets are carried in the same type; callers are expected to keep
// totals within uint64 range.
type Number uint64

// Sentinel errors returned by Partition construction and merging.
var (
	// ErrZeroSubsets indicates that a partition was requested with k < 1.
	// A partition must contain at least one subset.
	ErrZeroSubsets = errors.New("partition: subset count must be at least 1")

	// ErrSizeMismatch indicates an attempt to merge two partitions with a
	// different number of subsets. All partitions participating in one
	// heuristic run must share the same k.
	ErrSizeMismatch = errors.New("partition: subset count mismatch")

	// ErrNilPartition indicates that a nil *Partition was passed to Merge.
	ErrNilPartition = errors.New("partition: partition is nil")
)

// Option configures a Partition at construction time.
type Option func(*Partition)

// WithSumsOnly discards member numbers and keeps only running sums.
// Subsets of a sums-only partition report Numbers() == nil while Sum(),
// Difference() and the sorted invariant behave exactly as in full mode.
// Use it when inputs are large and only the resulting balance matters.
func WithSumsOnly() Option {
	return func(p *Partition) {
		p.sumsOnly = true
	}
}

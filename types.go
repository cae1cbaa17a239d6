// Package karmarkarkarp defines the configuration options and sentinel
// errors for the k-way Karmarkar-Karp driver.
//
// Errors (sentinel):
//
//	– ErrEmptyInput             if the input sequence holds no numbers.
//	– partition.ErrZeroSubsets  if k < 1 (shared with the partition package).
//
// Options:
//
//	– MemoryMode: MemoryModeFull retains each subset's member numbers for
//	  reproducible display; MemoryModeSums keeps only running sums.
package karmarkarkarp

import "errors"

// ErrEmptyInput indicates that the input sequence holds no numbers.
// The heuristic has no defined behavior for zero elements.
var ErrEmptyInput = errors.New("karmarkarkarp: input sequence is empty")

// MemoryMode controls how much each subset retains about its members.
//
// MemoryModeFull – subsets keep their member numbers; the final partition
// can list exactly which numbers landed in which bucket.
// MemoryModeSums – subsets keep only running sums; memory drops from
// O(n·k) to O(n + k) and the final partition reports sums and spread only.
type MemoryMode int

const (
	// MemoryModeFull stores all member numbers for direct bucket inspection.
	MemoryModeFull MemoryMode = iota

	// MemoryModeSums stores running sums only; Numbers() views are nil.
	MemoryModeSums
)

// Options configures the behavior of the KarmarkarKarp driver.
type Options struct {
	// MemoryMode selects full member tracking or sums-only accounting.
	MemoryMode MemoryMode
}

// Option represents a functional option for configuring KarmarkarKarp.
type Option func(*Options)

// WithMemoryMode sets the memory mode for subset bookkeeping.
func WithMemoryMode(mode MemoryMode) Option {
	return func(o *Options) {
		o.MemoryMode = mode
	}
}

// DefaultOptions returns an Options struct initialized with the defaults:
//
//   - MemoryMode: MemoryModeFull (member numbers fully retained).
func DefaultOptions() Options {
	return Options{
		MemoryMode: MemoryModeFull,
	}
}

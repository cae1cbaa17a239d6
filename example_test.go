package karmarkarkarp_test

import (
	"fmt"

	kk "github.com/jnickg/karmarkar-karp"
	"github.com/jnickg/karmarkar-karp/partition"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleKarmarkarKarp
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Split {1, 2, 4} across three buckets. No grouping beats giving each
//	number its own bucket, so the heuristic lands on exactly that, with
//	spread 4 − 1 = 3.
//
// Complexity: O(n log n + n·k log k)
func ExampleKarmarkarKarp() {
	p, err := kk.KarmarkarKarp([]partition.Number{1, 2, 4}, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(p)
	fmt.Println("difference =", p.Difference())
	// Output:
	// 3 subsets: [4],[2],[1]
	// difference = 3
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleKarmarkarKarp_twoWorkers
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Spread five jobs with costs {8, 7, 6, 5, 4} over two workers. The
//	greedy differencing settles on 16 vs 14 — near-balanced, though the
//	perfect 15/15 split exists. A heuristic, not an optimal solver.
//
// Use case:
//
//	Load balancing when job costs are known upfront.
func ExampleKarmarkarKarp_twoWorkers() {
	numbers := []partition.Number{8, 7, 6, 5, 4}

	p, err := kk.KarmarkarKarp(numbers, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("sums =", p.Sums())
	fmt.Println("difference =", p.Difference())
	// Output:
	// sums = [16 14]
	// difference = 2
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleKarmarkarKarp_surplusBuckets
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	More buckets than numbers: k = 4 with only two inputs. The surplus
//	buckets simply stay empty.
func ExampleKarmarkarKarp_surplusBuckets() {
	p, err := kk.KarmarkarKarp([]partition.Number{6, 5}, 4)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(p)
	// Output:
	// 4 subsets: [6],[5],[0],[0]
}

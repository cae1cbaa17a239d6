// Command kkbench sweeps the Karmarkar-Karp heuristic across generated
// workloads (repeating pattern, heavy/light skews, seeded uniform noise),
// workload sizes and bucket counts, and prints the resulting balance of
// every run as a table.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	kk "github.com/jnickg/karmarkar-karp"
	"github.com/jnickg/karmarkar-karp/dataset"
	"github.com/jnickg/karmarkar-karp/partition"
	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

func main() {
	app := kingpin.New("kkbench", "Sweep k-way Karmarkar-Karp partitioning across generated workloads and bucket counts.")
	var (
		sizes   = app.Flag("size", "Workload sizes to generate (repeatable).").Default("8", "16", "32", "64", "128", "256").Ints()
		buckets = app.Flag("buckets", "Bucket counts (k) to sweep (repeatable).").Short('k').Default("1", "2", "3", "4", "5", "6").Ints()
		seed    = app.Flag("seed", "Seed for the uniform workload.").Default("1").Int64()
		max     = app.Flag("max", "Upper bound for uniform workload values.").Default("100").Uint64()
		lean    = app.Flag("sums-only", "Track subset sums only (lower memory, no member listing).").Bool()
		debug   = app.Flag("debug", "Enable verbose logging.").Bool()
	)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	if err := run(*sizes, *buckets, *seed, partition.Number(*max), *lean); err != nil {
		log.WithError(err).Error("Sweep failed.")
		os.Exit(255)
	}
}

// workload names one generated corpus of a given size.
type workload struct {
	name    string
	numbers []partition.Number
}

// workloads builds the per-size corpora: the repeating {1,2,4} pattern, the
// two skew corners, and seeded uniform noise.
func workloads(n int, max partition.Number, seed int64) []workload {
	return []workload{
		{name: "pattern", numbers: dataset.Repeat(n, 1, 2, 4)},
		{name: "skew-large", numbers: dataset.SkewLarge(n)},
		{name: "skew-small", numbers: dataset.SkewSmall(n)},
		{name: "uniform", numbers: dataset.Uniform(n, max, seed)},
	}
}

// run executes the full sweep and renders one summary table.
func run(sizes, buckets []int, seed int64, max partition.Number, lean bool) error {
	var opts []kk.Option
	if lean {
		opts = append(opts, kk.WithMemoryMode(kk.MemoryModeSums))
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Size", "Workload", "Buckets", "Subset Sums", "Spread"})

	var data [][]string
	for _, n := range sizes {
		for _, w := range workloads(n, max, seed) {
			if w.numbers == nil {
				log.WithFields(log.Fields{"workload": w.name, "size": n}).
					Debug("Workload not defined for this size, skipping.")
				continue
			}
			for _, k := range buckets {
				p, err := kk.KarmarkarKarp(w.numbers, k, opts...)
				if err != nil {
					return fmt.Errorf("%s (n=%d, k=%d): %w", w.name, n, k, err)
				}
				log.WithFields(log.Fields{
					"workload": w.name,
					"size":     n,
					"buckets":  k,
					"spread":   p.Difference(),
				}).Debug("Partitioned workload.")
				data = append(data, []string{
					strconv.Itoa(n),
					w.name,
					strconv.Itoa(k),
					formatSums(p.Sums()),
					strconv.FormatUint(uint64(p.Difference()), 10),
				})
			}
		}
	}

	table.AppendBulk(data)
	table.Render()

	return nil
}

// formatSums renders subset sums as "16,14".
func formatSums(sums []partition.Number) string {
	parts := make([]string, len(sums))
	for i, s := range sums {
		parts[i] = strconv.FormatUint(uint64(s), 10)
	}

	return strings.Join(parts, ",")
}

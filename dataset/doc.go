// Package dataset builds deterministic input sequences for exercising the
// k-way partitioning heuristic: repeating patterns, adversarial skews and
// seeded uniform noise.
//
// ✨ Generators:
//   - Repeat(n, values...) — cycle through values until length n; the
//     classic {1, 2, 4} workload pattern.
//   - SkewLarge(n)         — almost all heavy elements plus a couple of
//     light ones; stresses the "offset large with small" pairing.
//   - SkewSmall(n)         — almost all light elements plus a couple of
//     heavy ones; the opposite corner.
//   - Uniform(n, max, seed) — n values drawn uniformly from [0, max],
//     deterministic for a fixed seed.
//
// Validation policy follows the module convention for data helpers: invalid
// sizes return nil rather than an error. Determinism policy: the same
// inputs (and seed) always produce the same sequence.
package dataset

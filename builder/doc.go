// Package builder constructs fixture trees for tests, examples, benchmarks and
// the CLI.
//
// Every constructor is a Constructor closure; Build resolves the functional
// options once and runs it:
//
//	t, err := builder.Build(builder.Path(6))
//	t, err := builder.Build(builder.Caterpillar(3, 2), builder.WithLabelScheme(func(i int) int { return 10 * (i + 1) }))
//	t, err := builder.Build(builder.Random(100), builder.WithSeed(42))
//
// Shapes (node index i is 0-based, labels come from the label scheme, default i+1)
//
//   - Path(n):             i - i+1 for i = 0..n-2.                       n ≥ 2
//   - Star(n):             hub 0 linked to every other index.            n ≥ 2
//   - Binary(n):           heap layout, i linked to (i-1)/2.             n ≥ 1
//   - Caterpillar(s, l):   a path spine of s nodes, each carrying l legs. s ≥ 1, l ≥ 0
//   - Random(n):           decodes a uniformly drawn Prüfer sequence, so
//     every labeled tree on n nodes is equally likely. Needs WithSeed or
//     WithRand.                                                          n ≥ 1
//
// Determinism
//
//	Same constructor, same options, same seed: same tree. Deterministic
//	shapes never touch the RNG.
//
// Errors
//
//   - ErrTooFewVertices   a size parameter below its minimum.
//   - ErrNeedRandSource   Random without WithSeed/WithRand.
//   - ErrConstructFailed  nil constructor, or the label scheme produced an
//     unusable label set (non-positive or repeated labels).
//
// Option constructors panic on meaningless values (WithRand(nil),
// WithLabelScheme(nil)); constructors themselves never panic.
package builder

// Package covergen generates covering arrays for combinatorial testing.
//
// Given k parameters, each with a finite set of values, and a strength n, a
// covering array is a set of rows (one value per parameter) in which every
// combination of values of every n parameters occurs at least once. Strength
// 2 is pairwise testing: far fewer rows than the full cartesian product, and
// every interaction of two parameters is still exercised.
//
// Packages:
//
//	param/           — validated parameter domains, YAML decoding
//	combo/           — assignments, combination ids, requirement sets
//	ipo/             — the In-Parameter-Order generator (options, stats, metrics)
//	ipo/prommetrics/ — Prometheus exporter for ipo metrics
//	coverage/        — brute-force n-wise coverage checker
//
// Quick start:
//
//	g, err := ipo.New([][]string{
//		{"linux", "darwin", "windows"},
//		{"amd64", "arm64"},
//		{"postgres", "sqlite"},
//	}, 2)
//	if err != nil {
//		log.Fatal(err)
//	}
//	rows := g.Result()
//	if err := coverage.Check(g.Params().Domains(), rows, 2); err != nil {
//		log.Fatal(err) // never happens
//	}
//
// The generator is a greedy heuristic: row counts are small but not minimal.
// Output is deterministic for a given input and seed.
package covergen

// Package ipo generates covering arrays with the In-Parameter-Order strategy.
//
// Given k ≥ 2 parameters with finite domains and a strength n (1 ≤ n ≤ k),
// a Generator produces rows (one value per parameter) such that for every
// n-subset of parameters every combination of their values appears in at
// least one row. Strength 2 is classic pairwise testing.
//
// Algorithm:
//
//  1. Seed: the cartesian product of the first n domains.
//  2. For each further parameter i (strictly in order):
//     a. Build T_i, every n-combination that pairs an (n-1)-subset of the
//        parameters before i with parameter i.
//     b. Horizontal growth: the first min(|D_i|, rows) rows take the values of
//        D_i in order; every other row takes the value covering the most
//        combinations still in T_i, ties going to the later value.
//     c. Optional eviction: a row whose best gain is ≤ the configured
//        threshold is moved, without a value for i, into the merge pool.
//     d. Vertical growth: each combination left in T_i is merged into the
//        first compatible partial row of the pool, or starts a new one.
//     e. Pool rows assigned on every parameter 0..i join the main rows.
//  3. Remaining pool rows are appended as they are.
//  4. Materialize: unassigned slots get a uniformly random domain value.
//
// The result is a greedy heuristic, not a minimum covering array.
//
// Complexity per column i: O(|rows|·|D_i|·C(i, n-1)) for horizontal growth
// and O(|T_i|·|pool|·n) for vertical growth; |T_i| grows as C(i, n-1)·Π|D|.
//
// Determinism: T_i is visited in ascending combination-id order (generation
// order) and the random fill uses the RNG from WithSeed/WithRand (default seed
// 1), so equal inputs and options give equal rows. WithWorkers only changes how
// candidate values are evaluated, never the outcome.
//
// Example:
//
//	g, err := ipo.New([][]string{
//		{"linux", "darwin", "windows"},
//		{"amd64", "arm64"},
//		{"go1.23", "go1.24"},
//	}, 2, ipo.WithSeed(7))
//	if err != nil {
//		// errors.Is(err, ipo.ErrEmptyDomain) ...
//	}
//	for _, row := range g.Result() {
//		fmt.Println(row)
//	}
//
// A Generator is not safe for concurrent use.
package ipo

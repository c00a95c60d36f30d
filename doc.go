// SPDX-License-Identifier: MIT

// Package ahp is an Analytic Hierarchy Process engine: it turns sparse
// pairwise judgments on the Saaty 1-9 scale into priority weights, scores
// how consistent those judgments are, and aggregates local weights across
// up to three hierarchy levels into a global ranking.
//
// The packages, leaves first:
//
//	scale/        judgment tokens ("3", "1/5"): validation, parsing, reciprocal, verbal meaning
//	matrix/       row-major Dense matrix, reciprocal/positivity validators, MatVec
//	pairwise/     builds an n×n reciprocal comparison matrix from upper-triangle judgments
//	priority/     priority vectors: row geometric mean (default) or principal eigenvector
//	consistency/  λmax, CI, Random Index, CR and the excellent/acceptable/needs revision bands
//	hierarchy/    item registry, typed matrix keys and the Aggregate entry point
//	metrics/      Prometheus Recorder plugged into Aggregate as an Observer
//
// Every computation is synchronous and deterministic. A run takes an
// immutable hierarchy.Input and returns a fresh *hierarchy.Result; problems
// are reported in Result.Errors instead of panics.
//
// Quick start:
//
//	var it hierarchy.Items
//	it.AddAlternative("Laptop")
//	it.AddAlternative("Tablet")
//
//	res := hierarchy.Aggregate(hierarchy.Input{
//		Items: it,
//		Level: hierarchy.Level1,
//		Judgments: map[hierarchy.Key]pairwise.Judgments{
//			hierarchy.AlternativesKey(""): {{Row: 0, Col: 1}: "1/3"},
//		},
//	})
//	for _, r := range res.Ranking() {
//		fmt.Println(r.Rank, r.Name, r.Weight)
//	}
//
// The ahp command (cmd/ahp) evaluates YAML analysis files with the same
// engine.
package ahp

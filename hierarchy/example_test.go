package hierarchy_test

import (
	"fmt"

	"github.com/katalvlaran/ahp/hierarchy"
	"github.com/katalvlaran/ahp/pairwise"
)

// ExampleAggregate runs a two-level hierarchy and prints the ranking.
func ExampleAggregate() {
	var it hierarchy.Items
	it.AddAlternative("Laptop")
	it.AddAlternative("Tablet")
	it.AddCriterion("Price")
	it.AddCriterion("Battery")

	in := hierarchy.Input{
		Items: it,
		Level: hierarchy.Level2,
		Judgments: map[hierarchy.Key]pairwise.Judgments{
			hierarchy.CriteriaKey(""):            {{Row: 0, Col: 1}: "3"},
			hierarchy.AlternativesKey("Price"):   {{Row: 0, Col: 1}: "1/3"},
			hierarchy.AlternativesKey("Battery"): {{Row: 0, Col: 1}: "5"},
		},
	}

	res := hierarchy.Aggregate(in)
	if !res.OK() {
		fmt.Println(res.Err())
		return
	}
	for _, r := range res.Ranking() {
		fmt.Printf("%d. %s %.4f\n", r.Rank, r.Name, r.Weight)
	}
	// Output:
	// 1. Tablet 0.6042
	// 2. Laptop 0.3958
}

package consistency_test

import (
	"fmt"

	"github.com/katalvlaran/ahp/consistency"
	"github.com/katalvlaran/ahp/matrix"
	"github.com/katalvlaran/ahp/priority"
)

// ExampleScore scores a slightly inconsistent 3×3 matrix.
func ExampleScore() {
	m, _ := matrix.NewFromRows([][]float64{
		{1, 3, 5},
		{1.0 / 3, 1, 3},
		{1.0 / 5, 1.0 / 3, 1},
	})
	v, _ := priority.FromGeometricMean(m)
	rec, err := consistency.Score(m, v.Principal)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("λmax=%.4f CI=%.4f RI=%.2f CR=%.4f status=%s\n",
		rec.LambdaMax, rec.CI, rec.RI, rec.CR, rec.Status)
	// Output:
	// λmax=3.0385 CI=0.0193 RI=0.58 CR=0.0332 status=excellent
}

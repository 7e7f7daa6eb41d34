package wavefront_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/graph"
	"github.com/katalvlaran/gridpath/wavefront"
)

// ExampleSearch floods a 4-cell strip whose third cell is closed on even ticks.
func ExampleSearch() {
	strip := graph.TemporalFunc[int](func(n, t int) []int {
		var out []int
		for _, m := range []int{n, n - 1, n + 1} {
			if m < 0 || m > 3 || (m == 2 && t%2 == 0) {
				continue
			}
			out = append(out, m)
		}
		return out
	})

	res, err := wavefront.Search[int](strip, []int{0},
		func(n int) bool { return n == 3 },
		wavefront.WithPeriod(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("arrived at", res.Time)
	// Output: arrived at 4
}

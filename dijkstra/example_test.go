// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/fieldsim/dijkstra"
	"github.com/katalvlaran/fieldsim/matrix"
)

// ExampleSingleSource computes distances on a weighted triangle.
func ExampleSingleSource() {
	adj, err := matrix.FromRows([][]float64{
		{0, 1, 5},
		{1, 0, 2},
		{5, 2, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	vd, err := dijkstra.SingleSource(adj, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(vd.Dist)
	// Output:
	// [0 1 3]
}

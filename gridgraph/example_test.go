// SPDX-License-Identifier: MIT

package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/fieldsim/gridgraph"
	"github.com/katalvlaran/fieldsim/neighborhood"
)

// ExampleNew builds a 4×4 square torus and queries the ring of vertices
// exactly one step away from the corner.
func ExampleNew() {
	g, err := gridgraph.New(gridgraph.Square, 4, 4, true)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(g.Spec.Key())
	fmt.Println(g.Between(0, 12), g.Between(0, 3))
	fmt.Println(g.Neighbors(0, neighborhood.WithRadius(1, 1)))
	// Output:
	// square-4x4-torus
	// 1 1
	// [1 3 4 12]
}

package dot_test

import (
	"fmt"

	"github.com/foldgraph/foldgraph/builder"
	"github.com/foldgraph/foldgraph/collapse"
	"github.com/foldgraph/foldgraph/core"
	"github.com/foldgraph/foldgraph/dot"
)

// ExampleCollapsed emits a folded three-vertex line: the surviving
// endpoints and one labeled aggregate edge.
func ExampleCollapsed() {
	g, err := builder.Path(3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	c, err := collapse.Collapse[int, core.Pair[int]](g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	src, err := dot.Collapsed(c)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(src)
	// Output:
	// graph G {
	//   node [shape=circle, fontsize=12];
	//
	//   "1";
	//   "3";
	//
	//   "1" -- "3" [label="Sequential(2)"];
	// }
}

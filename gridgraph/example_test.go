// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hoofit/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Parse
////////////////////////////////////////////////////////////////////////////////

// ExampleParse demonstrates loading a small height map and listing its
// trailheads (0-cells) and peaks (9-cells).
// Scenario:
//
//   - Row 0 climbs 0→3, row 1 ends in a peak.
//   - The '.' in row 2 is not a digit and becomes a wall.
//
// Complexity: O(W·H), Memory: O(W·H)
func ExampleParse() {
	input := "0123\n7654\n89.0\n"
	gg, err := gridgraph.Parse(strings.NewReader(input), gridgraph.DefaultGridOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("size: %dx%d\n", gg.Width, gg.Height)
	fmt.Println("trailheads:", gg.Trailheads())
	fmt.Println("peaks:", gg.Peaks())
	fmt.Print(gg)

	// Output:
	// size: 4x3
	// trailheads: [{0 0} {2 3}]
	// peaks: [{2 1}]
	// 0123
	// 7654
	// 89.0
}

package trails

import "github.com/katalvlaran/hoofit/gridgraph"

// Trailhead is the per-trailhead result of Survey.
type Trailhead struct {
	// Pos is the trailhead cell (height 0).
	Pos gridgraph.Position

	// Score is the number of distinct peaks reachable from Pos.
	Score int

	// Rating is the number of distinct climbing paths from Pos to any peak.
	Rating int
}

// walker holds the state of one trailhead's search.
type walker struct {
	grid     *gridgraph.GridGraph
	distinct bool

	// visited is only allocated when distinct is set.
	visited map[gridgraph.Position]struct{}

	// onPeak, if non-nil, is called each time a peak is counted.
	onPeak func(p gridgraph.Position)
}

func newWalker(gg *gridgraph.GridGraph, distinct bool) *walker {
	w := &walker{grid: gg, distinct: distinct}
	if distinct {
		w.visited = make(map[gridgraph.Position]struct{})
	}

	return w
}

package trails

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/hoofit/gridgraph"
)

// Seek sums a walk from every trailhead of gg.
// distinct=true counts distinct reachable peaks (Score);
// distinct=false counts distinct climbing paths (Rating).
// A nil grid yields 0.
func Seek(gg *gridgraph.GridGraph, distinct bool) int {
	if gg == nil {
		return 0
	}
	total := 0
	for _, head := range gg.Trailheads() {
		total += Walk(gg, head, distinct)
	}

	return total
}

// Score returns the sum of trailhead scores, Seek(gg, true).
func Score(gg *gridgraph.GridGraph) int {
	return Seek(gg, true)
}

// Rating returns the sum of trailhead ratings, Seek(gg, false).
func Rating(gg *gridgraph.GridGraph) int {
	return Seek(gg, false)
}

// Walk runs one search from start with its own visited set.
// start is normally a trailhead; any other cell climbs from its own height.
// An off-grid start yields 0.
func Walk(gg *gridgraph.GridGraph, start gridgraph.Position, distinct bool) int {
	if gg == nil {
		return 0
	}

	return newWalker(gg, distinct).walk(start)
}

// Survey reports score and rating for every trailhead, in row-major order.
// Summing the fields gives Score(gg) and Rating(gg).
func Survey(gg *gridgraph.GridGraph) []Trailhead {
	if gg == nil {
		return nil
	}
	heads := gg.Trailheads()
	out := make([]Trailhead, 0, len(heads))
	for _, head := range heads {
		out = append(out, Trailhead{
			Pos:    head,
			Score:  Walk(gg, head, true),
			Rating: Walk(gg, head, false),
		})
	}

	return out
}

// Peaks returns the distinct peaks reachable from start, in row-major order.
// Its length equals Walk(gg, start, true).
func Peaks(gg *gridgraph.GridGraph, start gridgraph.Position) []gridgraph.Position {
	if gg == nil {
		return nil
	}
	var peaks []gridgraph.Position
	w := newWalker(gg, true)
	w.onPeak = func(p gridgraph.Position) { peaks = append(peaks, p) }
	w.walk(start)

	slices.SortFunc(peaks, func(a, b gridgraph.Position) int {
		if c := cmp.Compare(a.Row, b.Row); c != 0 {
			return c
		}
		return cmp.Compare(a.Col, b.Col)
	})

	return peaks
}

// walk counts the peaks (distinct) or paths (rating) reachable from pos.
func (w *walker) walk(pos gridgraph.Position) int {
	// 1. Dedup: a cell already reached from this trailhead adds nothing
	if w.distinct {
		if _, seen := w.visited[pos]; seen {
			return 0
		}
		w.visited[pos] = struct{}{}
	}

	cur, ok := w.grid.Value(pos)
	if !ok {
		return 0
	}

	// 2. Peaks are terminal
	if cur == gridgraph.MaxHeight {
		if w.onPeak != nil {
			w.onPeak(pos)
		}
		return 1
	}

	// 3. Climb into every neighbour exactly one higher
	sum := 0
	for _, d := range w.grid.NeighborOffsets() {
		next := pos.Add(d)
		if v, ok := w.grid.Value(next); ok && v == cur+1 {
			sum += w.walk(next)
		}
	}

	return sum
}

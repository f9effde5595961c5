// Package trails implements the hiking-trail search over a gridgraph.GridGraph:
// from every trailhead (height 0) it climbs one unit at a time to peaks
// (height 9) with a recursive depth-first walk.
//
// What:
//
//   - Score  (part 1): distinct peaks reachable from each trailhead, summed.
//   - Rating (part 2): distinct climbing paths from each trailhead to any
//     peak, summed.
//   - Seek(g, distinct) selects between the two with one flag.
//   - Survey and Peaks report per-trailhead detail.
//
// A step is legal only between neighbouring cells (the grid's connectivity,
// Conn4 by default) where the target is exactly one higher than the source.
// NonDigit cells never satisfy that rule and act as walls.
//
// In distinct mode each trailhead owns a fresh visited set, so converging
// paths count a peak once for that trailhead while other trailheads still
// count it for themselves. Rating mode keeps no visited set at all.
//
// Complexity:
//
//   - Recursion depth is at most 9 because heights strictly increase.
//   - Score:  O(T × W × H) worst case (T = trailheads), Memory O(W×H) per walk.
//   - Rating: O(T × 4^9) worst case, Memory O(1) beyond the call stack.
//
// The grid is only read, so concurrent calls on one grid are safe.
package trails

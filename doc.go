// Package hoofit scores hiking trails on a digit height map: every 0-cell is
// a trailhead, every 9-cell a peak, and a trail climbs exactly one unit per
// orthogonal step.
//
// What is in here:
//
//	gridgraph/  — text → immutable, rectangular digit grid; non-digits are walls
//	trails/     — recursive depth-first walk with two counting policies
//	cmd/hoofit/ — reads one map file and prints both solutions
//
// Quick ASCII example:
//
//	0123
//	1234
//	8765
//	9876
//
// has one trailhead, one reachable peak (score 1) and 16 distinct climbing
// paths to it (rating 16).
//
//	go run ./cmd/hoofit path/to/map
package hoofit

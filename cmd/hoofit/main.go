// Package main solves the trailhead puzzle for one height map.
//
// Usage:
//
//	hoofit [path]
//
// The map is read from path, or from "day10" in the working directory when
// no path is given. Two lines are printed:
//
//	Solution 1: <sum of trailhead scores>
//	Solution 2: <sum of trailhead ratings>
//
// A missing or unreadable map is fatal.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/hoofit/gridgraph"
	"github.com/katalvlaran/hoofit/trails"
)

// defaultInput is the map name resolved against the per-run data directory.
const defaultInput = "day10"

func main() {
	log.SetFlags(0)
	log.SetPrefix("hoofit: ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}

// run loads the map named by args (or defaultInput) and writes both solutions.
func run(args []string, stdout io.Writer) error {
	path := defaultInput
	if len(args) > 0 {
		path = args[0]
	}

	gg, err := gridgraph.Load(path, gridgraph.DefaultGridOptions())
	if err != nil {
		return fmt.Errorf("error loading file %s: %w", path, err)
	}

	if _, err = fmt.Fprintf(stdout, "Solution 1: %d\n", trails.Seek(gg, true)); err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "Solution 2: %d\n", trails.Seek(gg, false))

	return err
}

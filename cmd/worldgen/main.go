// Command worldgen builds a seeded small-world map, generates one bounded
// environment series for it and runs a logistic population against that
// series. The run is printed to stdout as a tab-separated table; logs go to
// stderr.
//
// Usage:
//
//	worldgen [-config file.toml|file.yaml]... [-seed N] [-log-level info]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "worldgen:", err)
		os.Exit(1)
	}
}

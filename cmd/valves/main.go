// valves computes how much pressure a team of agents can release from a
// valve network.
//
// Usage:
//
//	valves solve [--budget N] [--agents K] [--parallel P] [--plan] scenario.yaml...
//	valves generate --shape star|path|cycle|grid|random --size N [--seed S] > scenario.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

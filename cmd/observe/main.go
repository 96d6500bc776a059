// Command observe builds observable types from a YAML schema and applies
// attribute writes to an instance, logging every change.
//
//	observe describe --schema shapes.yaml
//	observe apply --schema shapes.yaml --type Point --set x=1 --set y=2
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "observe: %v\n", err)
		os.Exit(1)
	}
}

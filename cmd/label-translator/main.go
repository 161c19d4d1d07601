// Package main provides the CLI entrypoint for label-translator.
//
// label-translator maps planetary image labels between dialects using
// translation tables:
//   - translate: run the Auto pass of one or more tables over an input label
//   - check: load and validate translation tables
//   - units: normalize unit attributes of an XML label
//   - export: build a complete PDS3 or PDS4 label from a cube label
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

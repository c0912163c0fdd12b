// SPDX-License-Identifier: MIT

// Command jordan prints a step-by-step Jordan normal form derivation for
// the shipped example matrices or for matrices read from a YAML file.
//
//	jordan run --example ex2 --verbose
//	jordan run --file mine.yaml --lang en --independence weak
//	jordan list
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

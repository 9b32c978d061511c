// Package main provides the stitchmatch CLI: stash management, pattern
// catalog management, and stash-to-pattern matching.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}

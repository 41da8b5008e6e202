// Package main provides the diindiin CLI: a console transport for the
// finance and goal-tracking bot plus storage setup commands.
package main

import (
	"fmt"
	"os"

	_ "time/tzdata"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}

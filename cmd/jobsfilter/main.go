// Package main is the entry point for the jobsfilter CLI, a terminal tool for
// inspecting job records by derived state.
package main

import (
	"os"

	"github.com/jdziat/jobs-filter/cmd/jobsfilter/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

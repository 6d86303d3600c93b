// Package main is the entry point for the hbnb CLI.
package main

import (
	"fmt"
	"os"

	"github.com/Aluranae/hbnb-cli/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "✗ %s\n", err)
		os.Exit(1)
	}
}

// Package main is the entry point for the cj CLI.
package main

import (
	"os"

	"github.com/f3rmion/cj/cmd/cj/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

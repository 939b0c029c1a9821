// Package main is the entry point for the srcsnip CLI.
package main

import (
	"os"

	"github.com/jmylchreest/srcsnip/cmd/srcsnip/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

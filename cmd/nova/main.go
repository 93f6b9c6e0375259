// Package main is the entry point for the nova CLI tool.
package main

import (
	"os"

	"github.com/novanotes/nova/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

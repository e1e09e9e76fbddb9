// Package main is the entry point for the matcache demo CLI.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/matcache/cmd/matcache/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

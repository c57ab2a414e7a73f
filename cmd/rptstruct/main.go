// Package main provides the CLI entry point for rptstruct.
package main

import (
	"os"

	"github.com/ukaji3/rptstruct-go/cmd/rptstruct/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

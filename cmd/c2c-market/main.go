// Package main is the entry point for the c2c-market server.
package main

import (
	"os"

	"github.com/okonkwoe/c2c-market/cmd/c2c-market/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

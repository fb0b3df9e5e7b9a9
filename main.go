package main

import (
	"os"

	"github.com/dmitrymomot/devswiss/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

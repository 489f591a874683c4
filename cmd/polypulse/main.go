package main

import (
	"os"

	"github.com/polypuls3/polypulse/cmd/polypulse/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/Eursukkul/buggy-fleet/cmd/fleetctl/app"
)

func main() {
	if err := app.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/nstack-dev/nstack/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

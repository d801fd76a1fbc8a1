package main

import (
	"os"

	"github.com/HeyBatlle1/Argus1/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

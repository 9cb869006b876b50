package main

import (
	"os"

	"github.com/diegomathiasDD/interfaces/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

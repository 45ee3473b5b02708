package main

import (
	"os"

	"github.com/traderlab/dipper/cmd/dipper/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

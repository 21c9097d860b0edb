package main

import (
	"os"

	"github.com/predlab/predeval/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/Erick-Lisboa/hierarchical-path/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"gocmd/cmd/gocmd/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

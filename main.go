package main

import (
	"os"

	"github.com/abhisek/angler/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

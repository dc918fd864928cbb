package main

import (
	"os"

	"github.com/maturapolski/matura/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

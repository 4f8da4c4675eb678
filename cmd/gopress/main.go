package main

import (
	"os"

	"github.com/msto63/gopress/cmd/gopress/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

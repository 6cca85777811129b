package main

import (
	"os"

	"github.com/ragstack/ragview/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

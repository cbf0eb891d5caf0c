package main

import (
	"os"

	"github.com/kmakise61/smartcards/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

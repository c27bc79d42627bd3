package main

import (
	"os"

	"diagnostic-canvas/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

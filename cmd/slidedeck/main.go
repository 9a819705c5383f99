package main

import (
	"os"

	"slidedeck/cmd/slidedeck/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

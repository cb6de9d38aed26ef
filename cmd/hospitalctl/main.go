package main

import (
	"os"

	"hospital-reception-backend/cmd/hospitalctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

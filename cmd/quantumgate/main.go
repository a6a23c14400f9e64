package main

import (
	"os"

	"github.com/vonj/QuantumGate/cmd/quantumgate/commands"
)

func main() {
	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

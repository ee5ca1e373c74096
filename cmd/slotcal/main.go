package main

import (
	"fmt"
	"os"

	"slotcal/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// Silent errors already reported their outcome on stdout and only
		// carry an exit code.
		if !cli.IsSilent(err) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}

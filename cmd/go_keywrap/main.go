package main

import (
	"fmt"
	"os"

	"github.com/andrei-cloud/go_keywrap/internal/commands/cli"
	"github.com/andrei-cloud/go_keywrap/internal/errorcodes"
)

// main builds the command tree and reports failures with their error code.
func main() {
	rootCmd, err := cli.NewRootCommand()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error Code: %s\n", errorcodes.FromError(err).CodeOnly())
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Package kw provides the key wrap commands.
package kw

import (
	"github.com/spf13/cobra"
)

// NewKWCommand creates the kw command group.
func NewKWCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kw",
		Short: "AES Key Wrap operations",
		Long: `AES Key Wrap (RFC 3394) operations.
This command provides subcommands for wrapping a key under a key-encrypting key (KEK),
unwrapping it with integrity verification, and running the RFC 3394 known-answer tests.`,
	}

	// Add subcommands.
	cmd.AddCommand(newWrapCommand())
	cmd.AddCommand(newUnwrapCommand())
	cmd.AddCommand(newSelfTestCommand())
	cmd.AddCommand(newInteractiveCommand())

	return cmd
}

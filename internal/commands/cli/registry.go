// Package cli provides centralized command registration.
package cli

import (
	"github.com/andrei-cloud/go_keywrap/internal/commands/cli/kw"
	"github.com/spf13/cobra"
)

// RegisterCommands registers all root commands.
func RegisterCommands(root *cobra.Command) error {
	root.AddCommand(kw.NewKWCommand())

	return nil
}

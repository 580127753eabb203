// Package cli provides the CLI command structure for go_keywrap.
package cli

import (
	"fmt"
	"strings"

	"github.com/andrei-cloud/go_keywrap/internal/config"
	"github.com/andrei-cloud/go_keywrap/internal/logging"
	"github.com/spf13/cobra"
)

// NewRootCommand creates and returns the root command with all subcommands.
func NewRootCommand() (*cobra.Command, error) {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "go_keywrap",
		Short: "AES Key Wrap (RFC 3394) utilities",
		Long: `Wrap and unwrap symmetric keys under a key-encrypting key using
the AES Key Wrap algorithm defined by RFC 3394.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Initialize configuration before running any command.
			if err := config.Initialize(cfgFile, cmd.Flags()); err != nil {
				return fmt.Errorf("failed to initialize configuration: %w", err)
			}

			// Initialize logger using config values (with CLI flags overriding config).
			cfg := config.Get()
			logging.InitLogger(
				strings.EqualFold(strings.TrimSpace(cfg.Log.Level), "debug"),
				strings.EqualFold(strings.TrimSpace(cfg.Log.Format), "human"),
			)

			return nil
		},
	}

	// Add persistent flags that affect all commands.
	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default is $HOME/.go_keywrap/config.yaml)")

	// Add global flags that can override config file settings.
	rootCmd.PersistentFlags().String("log-level", "info", "logging level (debug, info)")
	rootCmd.PersistentFlags().String("log-format", "", "logging format (human, json)")
	rootCmd.PersistentFlags().String("encoding", "", "input/output encoding (hex, base64)")
	rootCmd.PersistentFlags().String("policy", "", "key length policy (strict, general)")

	// Register all commands.
	if err := RegisterCommands(rootCmd); err != nil {
		return nil, fmt.Errorf("failed to register commands: %w", err)
	}

	return rootCmd, nil
}

package kw

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/andrei-cloud/go_keywrap/pkg/keywrap"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newSelfTestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Run the RFC 3394 known-answer tests",
		Long: `Wrap and unwrap every test vector from RFC 3394 section 4 and compare
the results byte for byte with the published values.`,
		RunE: runSelfTest,
	}
}

func runSelfTest(cmd *cobra.Command, _ []string) error {
	e := keywrap.New(keywrap.WithLengthPolicy(keywrap.GeneralPolicy))

	// Create and configure tabwriter.
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)

	if _, err := fmt.Fprintln(w, "Vector\tResult"); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "------\t------"); err != nil {
		return fmt.Errorf("failed to write header separator: %w", err)
	}

	failed := 0
	for _, v := range keywrap.Vectors() {
		result := "OK"
		if err := v.Verify(e); err != nil {
			log.Error().Err(err).Str("vector", v.Name).Msg("known-answer test failed")
			result = "FAILED"
			failed++
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\n", v.Name, result); err != nil {
			return fmt.Errorf("failed to write vector result: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	if failed > 0 {
		return errors.New("self test failed")
	}

	return nil
}

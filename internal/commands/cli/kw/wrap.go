package kw

import (
	"fmt"

	"github.com/andrei-cloud/go_keywrap/internal/encoding"
	"github.com/andrei-cloud/go_keywrap/internal/logging"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newWrapCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wrap",
		Short: "Wrap a key under a key-encrypting key",
		Long: `Wrap a key under a key-encrypting key (KEK) using AES Key Wrap (RFC 3394).
The KEK must be 16, 24 or 32 bytes. Under the strict policy the key must be
exactly as long as the KEK; the general policy accepts any key of at least
16 bytes whose length is a multiple of 8. The wrapped key is 8 bytes longer
than the input.`,
		RunE: runWrap,
	}

	// Add flags.
	cmd.Flags().String("kek", "", "Key-encrypting key")
	cmd.Flags().String("key", "", "Key to wrap")

	if err := cmd.MarkFlagRequired("kek"); err != nil {
		panic(err)
	}
	if err := cmd.MarkFlagRequired("key"); err != nil {
		panic(err)
	}

	return cmd
}

func runWrap(cmd *cobra.Command, _ []string) error {
	operationID := uuid.NewString()

	s, err := loadSettings()
	if err != nil {
		return fail(operationID, "wrap", err)
	}

	// Decode inputs into locked memory.
	kek, err := readSecret(cmd, "kek", s.encoding)
	if err != nil {
		return fail(operationID, "wrap", err)
	}
	defer kek.Destroy()

	key, err := readSecret(cmd, "key", s.encoding)
	if err != nil {
		return fail(operationID, "wrap", err)
	}
	defer key.Destroy()

	wrapped, err := s.engine().Wrap(key.Bytes(), kek.Bytes())
	if err != nil {
		return fail(operationID, "wrap", err)
	}

	out, err := encoding.Encode(wrapped, s.encoding, s.upper)
	if err != nil {
		return fail(operationID, "wrap", err)
	}

	kcv, err := kekCheckValue(kek.Bytes(), s.upper)
	if err != nil {
		return fail(operationID, "wrap", err)
	}

	logging.LogOperation(
		operationID,
		logging.EventKeyWrapped,
		s.policy.String(),
		kek.Len(),
		key.Len(),
		len(wrapped),
	)

	// Output results.
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Wrapped Key: %s\n", out)
	fmt.Fprintf(w, "KEK Length: %d bits\n", kek.Len()*8)
	fmt.Fprintf(w, "KEK Check Value: %s\n", kcv)
	fmt.Fprintf(w, "Policy: %s\n", s.policy)

	return nil
}

package kw

import (
	"fmt"

	"github.com/andrei-cloud/go_keywrap/internal/encoding"
	"github.com/andrei-cloud/go_keywrap/internal/logging"
	"github.com/andrei-cloud/go_keywrap/internal/securemem"
	"github.com/andrei-cloud/go_keywrap/pkg/keywrap"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newUnwrapCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unwrap",
		Short: "Unwrap a wrapped key and verify its integrity",
		Long: `Unwrap a key previously wrapped with AES Key Wrap (RFC 3394).
The recovered integrity check value is compared against A6A6A6A6A6A6A6A6.
On mismatch the command prints "Integrity: FAILED", emits no key material
and exits with error code 01: the KEK is wrong or the wrapped key was altered.`,
		RunE: runUnwrap,
	}

	// Add flags.
	cmd.Flags().String("kek", "", "Key-encrypting key")
	cmd.Flags().String("wrapped", "", "Wrapped key")

	if err := cmd.MarkFlagRequired("kek"); err != nil {
		panic(err)
	}
	if err := cmd.MarkFlagRequired("wrapped"); err != nil {
		panic(err)
	}

	return cmd
}

func runUnwrap(cmd *cobra.Command, _ []string) error {
	operationID := uuid.NewString()

	s, err := loadSettings()
	if err != nil {
		return fail(operationID, "unwrap", err)
	}

	kek, err := readSecret(cmd, "kek", s.encoding)
	if err != nil {
		return fail(operationID, "unwrap", err)
	}
	defer kek.Destroy()

	wrappedValue, err := cmd.Flags().GetString("wrapped")
	if err != nil {
		return fail(operationID, "unwrap", err)
	}
	wrapped, err := encoding.Decode(wrappedValue, s.encoding)
	if err != nil {
		return fail(operationID, "unwrap", fmt.Errorf("--wrapped: %w", err))
	}

	raw, ok, err := s.engine().Unwrap(wrapped, kek.Bytes())
	if err != nil {
		return fail(operationID, "unwrap", err)
	}

	kcv, err := kekCheckValue(kek.Bytes(), s.upper)
	if err != nil {
		return fail(operationID, "unwrap", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "KEK Check Value: %s\n", kcv)
	if !ok {
		logging.LogOperation(
			operationID,
			logging.EventIntegrityFailed,
			s.policy.String(),
			kek.Len(),
			len(wrapped),
			0,
		)
		fmt.Fprintln(w, "Integrity: FAILED")

		return fail(operationID, "unwrap", keywrap.ErrIntegrityCheckFailed)
	}

	key := securemem.New(raw)
	defer key.Destroy()

	out, err := encoding.Encode(key.Bytes(), s.encoding, s.upper)
	if err != nil {
		return fail(operationID, "unwrap", err)
	}

	logging.LogOperation(
		operationID,
		logging.EventKeyUnwrapped,
		s.policy.String(),
		kek.Len(),
		len(wrapped),
		key.Len(),
	)

	// Output results.
	fmt.Fprintf(w, "Key: %s\n", out)
	fmt.Fprintln(w, "Integrity: OK")

	return nil
}

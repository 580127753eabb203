package kw

import (
	"fmt"

	"github.com/andrei-cloud/go_keywrap/internal/config"
	"github.com/andrei-cloud/go_keywrap/internal/encoding"
	"github.com/andrei-cloud/go_keywrap/internal/errorcodes"
	"github.com/andrei-cloud/go_keywrap/internal/logging"
	"github.com/andrei-cloud/go_keywrap/internal/securemem"
	"github.com/andrei-cloud/go_keywrap/pkg/blockcipher"
	"github.com/andrei-cloud/go_keywrap/pkg/keywrap"
	"github.com/spf13/cobra"
)

// settings are the effective output and engine options for one command run.
type settings struct {
	encoding string
	upper    bool
	policy   keywrap.LengthPolicy
}

// loadSettings reads the current configuration. Unset values fall back to
// hex output and the strict length policy.
func loadSettings() (settings, error) {
	cfg := config.Get()

	enc, err := encoding.Normalize(cfg.Output.Encoding)
	if err != nil {
		return settings{}, err
	}

	policy, err := keywrap.ParsePolicy(cfg.Wrap.Policy)
	if err != nil {
		return settings{}, fmt.Errorf("%v: %w", err, errorcodes.Err15)
	}

	return settings{
		encoding: enc,
		upper:    cfg.Output.Uppercase,
		policy:   policy,
	}, nil
}

func (s settings) engine() *keywrap.Engine {
	return keywrap.New(keywrap.WithLengthPolicy(s.policy))
}

// readSecret decodes the named flag into locked memory.
func readSecret(cmd *cobra.Command, name, enc string) (*securemem.Secret, error) {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil, err
	}

	raw, err := encoding.Decode(value, enc)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", name, err)
	}

	return securemem.New(raw), nil
}

// fail logs a rejected operation and returns err annotated with the operation name.
func fail(operationID, operation string, err error) error {
	logging.LogFailure(operationID, operation, errorcodes.FromError(err).CodeOnly(), err)

	return fmt.Errorf("%s failed: %w", operation, err)
}

// kekCheckValue returns the hex check value identifying kek.
func kekCheckValue(kek []byte, upper bool) (string, error) {
	c, err := blockcipher.NewAES(kek)
	if err != nil {
		return "", err
	}

	kcv, err := blockcipher.CheckValue(c)
	if err != nil {
		return "", err
	}

	return encoding.Encode(kcv, encoding.Hex, upper)
}

package keywrap

import (
	"fmt"
	"strings"
)

// LengthPolicy selects which plaintext key lengths an Engine accepts.
type LengthPolicy int

const (
	// StrictPolicy requires the key to be exactly as long as the KEK.
	StrictPolicy LengthPolicy = iota
	// GeneralPolicy accepts any key of at least two semiblocks whose length is a multiple of 8.
	GeneralPolicy
)

// ParsePolicy maps a configuration value to a LengthPolicy.
// An empty string selects StrictPolicy.
func ParsePolicy(s string) (LengthPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return StrictPolicy, nil
	case "general":
		return GeneralPolicy, nil
	default:
		return StrictPolicy, fmt.Errorf("unknown length policy %q (must be strict or general)", s)
	}
}

func (p LengthPolicy) String() string {
	switch p {
	case StrictPolicy:
		return "strict"
	case GeneralPolicy:
		return "general"
	default:
		return fmt.Sprintf("LengthPolicy(%d)", int(p))
	}
}

func (p LengthPolicy) valid() bool {
	return p == StrictPolicy || p == GeneralPolicy
}

func checkKEK(kek []byte) error {
	switch len(kek) {
	case 16, 24, 32:
		return nil
	default:
		return fmt.Errorf("%w: %d bytes (must be 16, 24 or 32)", ErrInvalidKEKLength, len(kek))
	}
}

func (p LengthPolicy) checkKey(keyLen, kekLen int) error {
	if p == GeneralPolicy {
		if keyLen%semiblockSize != 0 || keyLen < 2*semiblockSize {
			return fmt.Errorf(
				"%w: %d bytes (must be a multiple of 8 and at least 16)",
				ErrInvalidKeyLength,
				keyLen,
			)
		}

		return nil
	}

	if keyLen != kekLen {
		return fmt.Errorf("%w: %d bytes (must equal KEK length %d)", ErrInvalidKeyLength, keyLen, kekLen)
	}

	return nil
}

func (p LengthPolicy) checkWrapped(wrappedLen, kekLen int) error {
	if p == GeneralPolicy {
		if wrappedLen%semiblockSize != 0 || wrappedLen < 3*semiblockSize {
			return fmt.Errorf(
				"%w: %d bytes (must be a multiple of 8 and at least 24)",
				ErrInvalidWrappedKeyLength,
				wrappedLen,
			)
		}

		return nil
	}

	if wrappedLen != kekLen+semiblockSize {
		return fmt.Errorf(
			"%w: %d bytes (must be KEK length plus 8, %d)",
			ErrInvalidWrappedKeyLength,
			wrappedLen,
			kekLen+semiblockSize,
		)
	}

	return nil
}

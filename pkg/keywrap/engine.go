package keywrap

import (
	"github.com/andrei-cloud/go_keywrap/pkg/blockcipher"
)

// Engine wraps and unwraps keys with a fixed block cipher factory and length policy.
// An Engine holds no key material and is safe for concurrent use.
type Engine struct {
	newCipher blockcipher.Factory
	policy    LengthPolicy
}

// Option configures an Engine.
type Option func(*Engine)

// WithCipherFactory replaces the AES adapter used for every block operation.
func WithCipherFactory(f blockcipher.Factory) Option {
	return func(e *Engine) {
		if f != nil {
			e.newCipher = f
		}
	}
}

// WithLengthPolicy selects the accepted key lengths.
// Values other than StrictPolicy and GeneralPolicy are ignored.
func WithLengthPolicy(p LengthPolicy) Option {
	return func(e *Engine) {
		if p.valid() {
			e.policy = p
		}
	}
}

// New returns an Engine using crypto/aes and StrictPolicy unless overridden.
func New(opts ...Option) *Engine {
	e := &Engine{
		newCipher: blockcipher.NewAESCipher,
		policy:    StrictPolicy,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Policy returns the engine's length policy.
func (e *Engine) Policy() LengthPolicy {
	return e.policy
}

var defaultEngine = New()

// WrapKey wraps key under kek. The key must be exactly as long as the KEK.
func WrapKey(key, kek []byte) ([]byte, error) {
	return defaultEngine.Wrap(key, kek)
}

// UnwrapKey unwraps wrapped under kek. ok is false, with a nil error, when the
// integrity check fails.
func UnwrapKey(wrapped, kek []byte) ([]byte, bool, error) {
	return defaultEngine.Unwrap(wrapped, kek)
}

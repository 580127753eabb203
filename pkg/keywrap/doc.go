// Package keywrap implements the AES Key Wrap algorithm of RFC 3394.
//
// Wrapping encrypts a key under a key-encrypting key (KEK) and produces a
// ciphertext eight bytes longer than the input. Unwrapping reverses the
// transform and verifies the fixed integrity check value A6A6A6A6A6A6A6A6.
//
// A failed integrity check is an expected outcome, not an error: UnwrapKey
// reports it through its ok result so callers can tell a wrong KEK or a
// tampered ciphertext apart from malformed input.
//
//	wrapped, err := keywrap.WrapKey(key, kek)
//	key, ok, err := keywrap.UnwrapKey(wrapped, kek)
//
// All state is local to a single call; the package is safe for concurrent use.
package keywrap

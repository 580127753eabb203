package keywrap

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// Vector is a known-answer test case.
type Vector struct {
	Name    string
	KEK     []byte
	Key     []byte
	Wrapped []byte
}

var rfc3394Vectors = []struct {
	name, kek, key, wrapped string
}{
	{
		name:    "4.1 128-bit key, 128-bit KEK",
		kek:     "000102030405060708090A0B0C0D0E0F",
		key:     "00112233445566778899AABBCCDDEEFF",
		wrapped: "1FA68B0A8112B447AEF34BD8FB5A7B829D3E862371D2CFE5",
	},
	{
		name:    "4.2 128-bit key, 192-bit KEK",
		kek:     "000102030405060708090A0B0C0D0E0F1011121314151617",
		key:     "00112233445566778899AABBCCDDEEFF",
		wrapped: "96778B25AE6CA435F92B5B97C050AED2468AB8A17AD84E5D",
	},
	{
		name:    "4.3 128-bit key, 256-bit KEK",
		kek:     "000102030405060708090A0B0C0D0E0F101112131415161718191A1B1C1D1E1F",
		key:     "00112233445566778899AABBCCDDEEFF",
		wrapped: "64E8C3F9CE0F5BA263E9777905818A2A93C8191E7D6E8AE7",
	},
	{
		name:    "4.4 192-bit key, 192-bit KEK",
		kek:     "000102030405060708090A0B0C0D0E0F1011121314151617",
		key:     "00112233445566778899AABBCCDDEEFF0001020304050607",
		wrapped: "031D33264E15D33268F24EC260743EDCE1C6C7DDEE725A936BA814915C6762D2",
	},
	{
		name:    "4.5 192-bit key, 256-bit KEK",
		kek:     "000102030405060708090A0B0C0D0E0F101112131415161718191A1B1C1D1E1F",
		key:     "00112233445566778899AABBCCDDEEFF0001020304050607",
		wrapped: "A8F9BC1612C68B3FF6E6F4FBE30E71E4769C8B80A32CB8958CD5D17D6B254DA1",
	},
	{
		name:    "4.6 256-bit key, 256-bit KEK",
		kek:     "000102030405060708090A0B0C0D0E0F101112131415161718191A1B1C1D1E1F",
		key:     "00112233445566778899AABBCCDDEEFF000102030405060708090A0B0C0D0E0F",
		wrapped: "28C9F404C4B810F4CBCCB35CFB87F8263F5786E2D80ED326CBC7F0E71A99F43BFB988B9B7A02DD21",
	},
}

// Vectors returns fresh copies of the RFC 3394 section 4 test vectors.
func Vectors() []Vector {
	out := make([]Vector, 0, len(rfc3394Vectors))
	for _, v := range rfc3394Vectors {
		out = append(out, Vector{
			Name:    v.name,
			KEK:     mustDecodeHex(v.kek),
			Key:     mustDecodeHex(v.key),
			Wrapped: mustDecodeHex(v.wrapped),
		})
	}

	return out
}

// Verify wraps and unwraps the vector with e and compares both results.
func (v Vector) Verify(e *Engine) error {
	wrapped, err := e.Wrap(v.Key, v.KEK)
	if err != nil {
		return fmt.Errorf("%s: wrap: %w", v.Name, err)
	}
	if !bytes.Equal(wrapped, v.Wrapped) {
		return fmt.Errorf("%s: wrap mismatch: got %X, want %X", v.Name, wrapped, v.Wrapped)
	}

	key, ok, err := e.Unwrap(v.Wrapped, v.KEK)
	if err != nil {
		return fmt.Errorf("%s: unwrap: %w", v.Name, err)
	}
	if !ok {
		return fmt.Errorf("%s: unwrap: %w", v.Name, ErrIntegrityCheckFailed)
	}
	if !bytes.Equal(key, v.Key) {
		return fmt.Errorf("%s: unwrap mismatch: got %X, want %X", v.Name, key, v.Key)
	}

	return nil
}

// SelfTest runs every RFC 3394 vector through a GeneralPolicy engine and
// returns the first failure.
func SelfTest() error {
	e := New(WithLengthPolicy(GeneralPolicy))
	for _, v := range Vectors() {
		if err := v.Verify(e); err != nil {
			return err
		}
	}

	return nil
}

func mustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(fmt.Sprintf("keywrap: bad vector hex %q: %v", s, err))
	}

	return b
}

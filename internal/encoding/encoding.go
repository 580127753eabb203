// Package encoding converts between raw key bytes and their CLI text forms.
// The key wrap engine itself only sees raw bytes.
package encoding

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/andrei-cloud/go_keywrap/internal/errorcodes"
)

// Supported text encodings.
const (
	Hex    = "hex"
	Base64 = "base64"
)

// Normalize validates an encoding name. An empty name selects Hex.
func Normalize(enc string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(enc)) {
	case "", Hex:
		return Hex, nil
	case Base64:
		return Base64, nil
	default:
		return "", fmt.Errorf("unsupported encoding %q (must be hex or base64): %w", enc, errorcodes.Err15)
	}
}

// Decode parses s in the given encoding. Whitespace inside hex input is ignored.
func Decode(s, enc string) ([]byte, error) {
	enc, err := Normalize(enc)
	if err != nil {
		return nil, err
	}

	var out []byte
	switch enc {
	case Base64:
		out, err = base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	default:
		out, err = hex.DecodeString(strings.Join(strings.Fields(s), ""))
	}
	if err != nil {
		return nil, fmt.Errorf("invalid %s input: %v: %w", enc, err, errorcodes.Err15)
	}

	return out, nil
}

// Encode renders raw in the given encoding. Hex output is uppercase when upper is set.
func Encode(raw []byte, enc string, upper bool) (string, error) {
	enc, err := Normalize(enc)
	if err != nil {
		return "", err
	}

	if enc == Base64 {
		return base64.StdEncoding.EncodeToString(raw), nil
	}

	s := hex.EncodeToString(raw)
	if upper {
		s = strings.ToUpper(s)
	}

	return s, nil
}

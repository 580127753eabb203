package blockcipher

import "fmt"

// CheckValueLength is the number of bytes reported by CheckValue.
const CheckValueLength = 3

// CheckValue computes the key check value of the key behind c: the leading
// bytes of the encryption of a block of binary zeros.
func CheckValue(c Cipher) ([]byte, error) {
	block := make([]byte, c.BlockSize())
	if err := c.EncryptBlock(block, block); err != nil {
		return nil, fmt.Errorf("failed to compute check value: %w", err)
	}

	return block[:CheckValueLength:CheckValueLength], nil
}

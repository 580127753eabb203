// Package blockcipher provides the single-block AES primitive consumed by the
// key wrap engines: AES in ECB mode, no padding, exactly one 16-byte block per call.
package blockcipher

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"
)

// BlockSize is the AES block size in bytes.
const BlockSize = aes.BlockSize

// ErrInvalidBlockSize is returned when a buffer is not exactly one block long.
var ErrInvalidBlockSize = errors.New("buffer must be exactly one block")

// Cipher encrypts and decrypts exactly one block per call.
// Implementations must be safe to call with dst and src overlapping entirely.
type Cipher interface {
	BlockSize() int
	EncryptBlock(dst, src []byte) error
	DecryptBlock(dst, src []byte) error
}

// Factory builds a Cipher keyed with the given key-encrypting key.
type Factory func(kek []byte) (Cipher, error)

// AES is the standard Cipher backed by crypto/aes.
type AES struct {
	enc cipher.BlockMode
	dec cipher.BlockMode
}

// NewAES returns an AES adapter keyed with kek. The key length selects AES-128/192/256.
func NewAES(kek []byte) (*AES, error) {
	block, err := aes.NewCipher(kek)
	if err != nil {
		return nil, fmt.Errorf("aes cipher init failed: %w", err)
	}

	return &AES{
		enc: newECBEncrypter(block),
		dec: newECBDecrypter(block),
	}, nil
}

// NewAESCipher is a Factory producing AES adapters.
func NewAESCipher(kek []byte) (Cipher, error) {
	c, err := NewAES(kek)
	if err != nil {
		return nil, err
	}

	return c, nil
}

// BlockSize returns the cipher block size.
func (c *AES) BlockSize() int { return BlockSize }

// EncryptBlock encrypts one block from src into dst.
func (c *AES) EncryptBlock(dst, src []byte) error {
	if err := checkBlock(dst, src); err != nil {
		return err
	}
	c.enc.CryptBlocks(dst, src)

	return nil
}

// DecryptBlock decrypts one block from src into dst.
func (c *AES) DecryptBlock(dst, src []byte) error {
	if err := checkBlock(dst, src); err != nil {
		return err
	}
	c.dec.CryptBlocks(dst, src)

	return nil
}

func checkBlock(dst, src []byte) error {
	if len(src) != BlockSize {
		return fmt.Errorf("%w: src is %d bytes", ErrInvalidBlockSize, len(src))
	}
	if len(dst) != BlockSize {
		return fmt.Errorf("%w: dst is %d bytes", ErrInvalidBlockSize, len(dst))
	}

	return nil
}

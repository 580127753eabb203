// Package securemem holds secret CLI inputs in memguard locked buffers.
package securemem

import (
	"github.com/awnumar/memguard"
)

// Secret wraps a memguard locked buffer.
type Secret struct {
	buf *memguard.LockedBuffer
}

// New moves b into locked memory. The source slice is wiped.
func New(b []byte) *Secret {
	return &Secret{buf: memguard.NewBufferFromBytes(b)}
}

// Bytes returns the protected bytes. The slice is invalid after Destroy.
func (s *Secret) Bytes() []byte { return s.buf.Bytes() }

// Len returns the secret length in bytes.
func (s *Secret) Len() int { return s.buf.Size() }

// Destroy wipes and releases the buffer. It is safe to call more than once.
func (s *Secret) Destroy() { s.buf.Destroy() }

package keywrap

import "crypto/subtle"

// Unwrap decrypts wrapped under kek.
//
// On success it returns the recovered key and ok == true. When the recovered
// integrity check value does not match, it returns nil, false and a nil error:
// the KEK is wrong or the wrapped key was altered. A non-nil error means the
// input lengths were invalid or the block cipher failed.
func (e *Engine) Unwrap(wrapped, kek []byte) ([]byte, bool, error) {
	if err := checkKEK(kek); err != nil {
		return nil, false, err
	}
	if err := e.policy.checkWrapped(len(wrapped), len(kek)); err != nil {
		return nil, false, err
	}

	c, err := e.newCipher(kek)
	if err != nil {
		return nil, false, err
	}

	var (
		n   = len(wrapped)/semiblockSize - 1
		a   semiblock
		r   = split(wrapped[semiblockSize:])
		buf [blockSize]byte
	)
	copy(a[:], wrapped[:semiblockSize])
	defer wipe(&a, r, &buf)

	for j := rounds - 1; j >= 0; j-- {
		for i := n - 1; i >= 0; i-- {
			a.xorCounter(step(n, j, i))
			load(&buf, &a, &r[i])
			if err := c.DecryptBlock(buf[:], buf[:]); err != nil {
				return nil, false, err
			}
			store(&buf, &a, &r[i])
		}
	}

	if subtle.ConstantTimeCompare(a[:], icv[:]) != 1 {
		return nil, false, nil
	}

	return join(r...), true, nil
}

// UnwrapVerified is Unwrap for callers that treat a failed integrity check as an
// error. It returns ErrIntegrityCheckFailed in that case.
func (e *Engine) UnwrapVerified(wrapped, kek []byte) ([]byte, error) {
	key, ok, err := e.Unwrap(wrapped, kek)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrIntegrityCheckFailed
	}

	return key, nil
}

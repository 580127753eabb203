package keywrap

// Wrap encrypts key under kek and returns A‖R[0]‖…‖R[n-1].
// The inputs are not modified. The transform runs exactly 6n block encryptions.
func (e *Engine) Wrap(key, kek []byte) ([]byte, error) {
	if err := checkKEK(kek); err != nil {
		return nil, err
	}
	if err := e.policy.checkKey(len(key), len(kek)); err != nil {
		return nil, err
	}

	c, err := e.newCipher(kek)
	if err != nil {
		return nil, err
	}

	var (
		n   = len(key) / semiblockSize
		a   = icv
		r   = split(key)
		buf [blockSize]byte
	)
	defer wipe(&a, r, &buf)

	for j := 0; j < rounds; j++ {
		for i := 0; i < n; i++ {
			load(&buf, &a, &r[i])
			if err := c.EncryptBlock(buf[:], buf[:]); err != nil {
				return nil, err
			}
			store(&buf, &a, &r[i])
			a.xorCounter(step(n, j, i))
		}
	}

	return join(append([]semiblock{a}, r...)...), nil
}

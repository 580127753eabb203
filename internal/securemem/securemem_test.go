package securemem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecretLifecycle(t *testing.T) {
	src := []byte{1, 2, 3, 4, 5, 6, 7, 8}

	s := New(src)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, s.Bytes())
	assert.Equal(t, 8, s.Len())
	assert.Equal(t, make([]byte, 8), src, "source must be wiped")

	s.Destroy()
	assert.Empty(t, s.Bytes())
	s.Destroy()
}

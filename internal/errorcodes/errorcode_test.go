package errorcodes

import (
	"errors"
	"fmt"
	"testing"

	"github.com/andrei-cloud/go_keywrap/pkg/keywrap"
	"github.com/stretchr/testify/assert"
)

func TestFromError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{name: "nil", err: nil, want: Err00},
		{name: "integrity", err: keywrap.ErrIntegrityCheckFailed, want: Err01},
		{name: "key length", err: fmt.Errorf("%w: 3 bytes", keywrap.ErrInvalidKeyLength), want: Err02},
		{name: "kek length", err: fmt.Errorf("wrap: %w", keywrap.ErrInvalidKEKLength), want: ErrBB},
		{name: "wrapped length", err: keywrap.ErrInvalidWrappedKeyLength, want: Err80},
		{name: "wrapped code", err: fmt.Errorf("decode kek: %w", Err15), want: Err15},
		{name: "unknown", err: errors.New("boom"), want: Err41},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FromError(tt.err))
		})
	}
}

func TestErrorCodeFormatting(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "01", Err01.CodeOnly())
	assert.Equal(t, "BB: Invalid wrapping key", ErrBB.Error())
}

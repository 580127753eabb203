package encoding

import (
	"testing"

	"github.com/andrei-cloud/go_keywrap/internal/errorcodes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		enc     string
		want    []byte
		wantErr bool
	}{
		{name: "hex upper", in: "01AB0F", enc: Hex, want: []byte{0x01, 0xAB, 0x0F}},
		{name: "hex default", in: "01ab0f", enc: "", want: []byte{0x01, 0xAB, 0x0F}},
		{name: "hex grouped", in: "01AB 0F\n10", enc: Hex, want: []byte{0x01, 0xAB, 0x0F, 0x10}},
		{name: "base64", in: "AasP", enc: Base64, want: []byte{0x01, 0xAB, 0x0F}},
		{name: "bad hex", in: "0G", enc: Hex, wantErr: true},
		{name: "odd hex", in: "ABC", enc: Hex, wantErr: true},
		{name: "bad base64", in: "@@@", enc: Base64, wantErr: true},
		{name: "bad encoding", in: "00", enc: "pem", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Decode(tt.in, tt.enc)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errorcodes.Err15)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncode(t *testing.T) {
	t.Parallel()

	raw := []byte{0x01, 0xAB, 0x0F}

	s, err := Encode(raw, Hex, true)
	require.NoError(t, err)
	assert.Equal(t, "01AB0F", s)

	s, err = Encode(raw, "", false)
	require.NoError(t, err)
	assert.Equal(t, "01ab0f", s)

	s, err = Encode(raw, Base64, true)
	require.NoError(t, err)
	assert.Equal(t, "AasP", s)

	_, err = Encode(raw, "pem", true)
	assert.Error(t, err)
}

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrei-cloud/go_keywrap/internal/errorcodes"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	rootCmd, err := NewRootCommand()
	require.NoError(t, err)

	b := new(bytes.Buffer)
	rootCmd.SetOut(b)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()

	return b.String(), err
}

func TestRootCommandWrap(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(home)

	out, err := runRoot(t,
		"kw", "wrap",
		"--kek", "000102030405060708090A0B0C0D0E0F",
		"--key", "00112233445566778899AABBCCDDEEFF",
		"--log-format", "json",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrapped Key: 1FA68B0A8112B447AEF34BD8FB5A7B829D3E862371D2CFE5")
	assert.Contains(t, out, "KEK Length: 128 bits")
	assert.Contains(t, out, "KEK Check Value: C6A13B")

	_, err = os.Stat(filepath.Join(home, ".go_keywrap", "config.yaml"))
	assert.NoError(t, err, "default config file is created")
}

func TestRootCommandBase64(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(home)

	out, err := runRoot(t,
		"--encoding", "base64",
		"kw", "unwrap",
		"--kek", "AAECAwQFBgcICQoLDA0ODw==",
		"--wrapped", "H6aLCoEStEeu80vY+1p7gp0+hiNx0s/l",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Key: ABEiM0RVZneImaq7zN3u/w==")
	assert.Contains(t, out, "Integrity: OK")
}

func TestRootCommandGeneralPolicy(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(home)

	kek := "000102030405060708090A0B0C0D0E0F101112131415161718191A1B1C1D1E1F"
	key := "00112233445566778899AABBCCDDEEFF"

	_, err := runRoot(t, "kw", "wrap", "--kek", kek, "--key", key)
	require.Error(t, err)
	assert.Equal(t, "02", errorcodes.FromError(err).CodeOnly())

	out, err := runRoot(t, "--policy", "general", "kw", "wrap", "--kek", kek, "--key", key)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrapped Key: 64E8C3F9CE0F5BA263E9777905818A2A93C8191E7D6E8AE7")
	assert.Contains(t, out, "Policy: general")
}

func TestRootCommandErrorCodes(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(home)

	tests := []struct {
		name string
		args []string
		code string
	}{
		{
			name: "integrity failure",
			args: []string{
				"kw", "unwrap",
				"--kek", "000102030405060708090A0B0C0D0E0F",
				"--wrapped", "1FA68B0A8112B447AEF34BD8FB5A7B829D3E862371D2CFE4",
			},
			code: "01",
		},
		{
			name: "invalid KEK length",
			args: []string{
				"kw", "wrap",
				"--kek", "0001020304050607",
				"--key", "00112233445566778899AABBCCDDEEFF",
			},
			code: "BB",
		},
		{
			name: "invalid wrapped length",
			args: []string{
				"kw", "unwrap",
				"--kek", "000102030405060708090A0B0C0D0E0F",
				"--wrapped", "1FA68B0A8112B447AEF34BD8FB5A7B82",
			},
			code: "80",
		},
		{
			name: "invalid hex",
			args: []string{"kw", "wrap", "--kek", "ZZ", "--key", "00"},
			code: "15",
		},
		{
			name: "unknown encoding",
			args: []string{
				"--encoding", "base32",
				"kw", "wrap", "--kek", "00", "--key", "00",
			},
			code: "15",
		},
		{
			name: "unknown policy",
			args: []string{
				"--policy", "lenient",
				"kw", "wrap", "--kek", "00", "--key", "00",
			},
			code: "15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runRoot(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, errorcodes.FromError(err).CodeOnly())
			assert.NotContains(t, out, "Key:")
		})
	}
}

func TestRegisterCommands(t *testing.T) {
	rootCmd, err := NewRootCommand()
	require.NoError(t, err)

	kwCmd, _, err := rootCmd.Find([]string{"kw", "selftest"})
	require.NoError(t, err)
	assert.Equal(t, "selftest", kwCmd.Name())
}

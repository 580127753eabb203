package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	require.NoError(t, Initialize("", nil))

	cfg := Get()
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "human", cfg.Log.Format)
	assert.Equal(t, "hex", cfg.Output.Encoding)
	assert.True(t, cfg.Output.Uppercase)
	assert.Equal(t, "strict", cfg.Wrap.Policy)
	assert.NotNil(t, GetViper())

	data, err := os.ReadFile(filepath.Join(home, ".go_keywrap", "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "policy: strict")
}

func TestInitializeConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "kw.yaml")
	content := "log:\n  level: debug\n  format: json\noutput:\n  encoding: base64\n  uppercase: false\nwrap:\n  policy: general\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	require.NoError(t, Initialize(path, nil))

	cfg := Get()
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "base64", cfg.Output.Encoding)
	assert.False(t, cfg.Output.Uppercase)
	assert.Equal(t, "general", cfg.Wrap.Policy)
}

func TestInitializeMissingExplicitFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	err := Initialize(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestInitializeEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("GOKEYWRAP_WRAP_POLICY", "general")
	t.Setenv("GOKEYWRAP_OUTPUT_ENCODING", "base64")

	require.NoError(t, Initialize("", nil))
	assert.Equal(t, "general", Get().Wrap.Policy)
	assert.Equal(t, "base64", Get().Output.Encoding)
}

func TestInitializeFlagOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("GOKEYWRAP_WRAP_POLICY", "strict")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("policy", "", "")
	flags.String("log-level", "info", "")
	require.NoError(t, flags.Parse([]string{"--policy", "general", "--log-level", "debug"}))

	require.NoError(t, Initialize("", flags))
	assert.Equal(t, "general", Get().Wrap.Policy)
	assert.Equal(t, "debug", Get().Log.Level)
	assert.Equal(t, "human", Get().Log.Format)
}

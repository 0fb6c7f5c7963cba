package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "github-mcp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FillsDefaults(t *testing.T) {
	path := writeConfig(t, "token: abc123\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "abc123", cfg.Token)
	assert.Equal(t, "https://api.github.com", cfg.APIBase)
	assert.True(t, cfg.SSLVerify)
	assert.Equal(t, 30, cfg.TimeoutSeconds)
	assert.Equal(t, 20000, cfg.Limits.FileMaxChars)
	assert.Equal(t, 300, cfg.Limits.ErrorBodyChars)
}

func TestLoad_OverridesAndPartialLimits(t *testing.T) {
	path := writeConfig(t, `
api_base: https://github.internal/api/v3
ssl_verify: false
timeout_seconds: 5
limits:
  file_max_chars: 1000
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://github.internal/api/v3", cfg.APIBase)
	assert.False(t, cfg.SSLVerify)
	assert.Equal(t, 5, cfg.TimeoutSeconds)
	assert.Equal(t, 1000, cfg.Limits.FileMaxChars)
	// Unset limits keep their defaults.
	assert.Equal(t, 2000, cfg.Limits.PatchMaxChars)
	assert.Equal(t, 20, cfg.Limits.ListLimit)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "env-token")
	t.Setenv("GITHUB_API_BASE", "https://ghe.example.com/api/v3/")
	t.Setenv("GITHUB_SSL_VERIFY", "no")
	t.Setenv("SSL_CERT_FILE", "/etc/ssl/corp-ca.pem")

	cfg := Default()
	cfg.ApplyEnv()

	assert.Equal(t, "env-token", cfg.Token)
	assert.Equal(t, "https://ghe.example.com/api/v3", cfg.APIBase)
	assert.False(t, cfg.SSLVerify)
	assert.Equal(t, "/etc/ssl/corp-ca.pem", cfg.CACertFile)
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"false", false},
		{"FALSE", false},
		{"0", false},
		{"no", false},
		{"true", true},
		{"1", true},
		{"anything", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseBool(tt.in), "parseBool(%q)", tt.in)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BOARDHUB_CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.RecentBoardsLimit)
	assert.Equal(t, 2, cfg.SearchResultLimit)
	assert.Equal(t, 3600, cfg.TokenTTL)
	assert.Equal(t, "default", cfg.Source("recent_boards_limit"))
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("BOARDHUB_CONFIG_PATH", dir)

	content := "recent_boards_limit: 8\nsearch_result_limit: 5\ntrusted_proxies:\n  - 10.0.0.0/8\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o600))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.RecentBoardsLimit)
	assert.Equal(t, 5, cfg.SearchResultLimit)
	assert.Equal(t, "file", cfg.Source("recent_boards_limit"))
	assert.Equal(t, []string{"10.0.0.0/8"}, cfg.TrustedProxies)
	// Untouched values stay default
	assert.Equal(t, "default", cfg.Source("token_ttl"))
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("BOARDHUB_CONFIG_PATH", dir)

	content := "recent_boards_limit: 8\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o600))

	t.Setenv("BOARDHUB_RECENT_BOARDS_LIMIT", "12")
	t.Setenv("BOARDHUB_TOKEN_SECRET", "hunter2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.RecentBoardsLimit)
	assert.Equal(t, "environment", cfg.Source("recent_boards_limit"))
	assert.Equal(t, "hunter2", cfg.TokenSecret)
}

func TestTokenSecretNeverReadFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("BOARDHUB_CONFIG_PATH", dir)

	content := "token_secret: leaked\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.TokenSecret)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:    "bad trusted proxy",
			mutate:  func(c *Config) { c.TrustedProxies = []string{"not-a-cidr"} },
			wantErr: true,
		},
		{
			name:   "plain IP proxy is accepted",
			mutate: func(c *Config) { c.TrustedProxies = []string{"10.1.2.3"} },
		},
		{
			name:    "zero recent limit",
			mutate:  func(c *Config) { c.RecentBoardsLimit = 0 },
			wantErr: true,
		},
		{
			name:    "negative search limit",
			mutate:  func(c *Config) { c.SearchResultLimit = -1 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newDefault()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsTrustedProxy(t *testing.T) {
	cfg := newDefault()
	cfg.TrustedProxies = []string{"10.0.0.0/8", "192.168.1.5"}

	assert.True(t, cfg.IsTrustedProxy("10.1.2.3"))
	assert.True(t, cfg.IsTrustedProxy("192.168.1.5"))
	assert.False(t, cfg.IsTrustedProxy("172.16.0.1"))
	assert.False(t, cfg.IsTrustedProxy("bogus"))
}

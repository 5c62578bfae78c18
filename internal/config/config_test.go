package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamercad/clickops/internal/doapi"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, doapi.DefaultBaseURL, cfg.APIURL)
	assert.Equal(t, doapi.DefaultTimeout, cfg.Timeout)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadMissingExplicitConfigFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadTokenFromEnv(t *testing.T) {
	t.Setenv("DIGITALOCEAN_TOKEN", "env-token")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.Token)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clickops.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
token: file-token
api_url: https://do.example.test
timeout: 10s
log_level: debug
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "file-token", cfg.Token)
	assert.Equal(t, "https://do.example.test", cfg.APIURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestEnvOverridesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clickops.yaml")
	require.NoError(t, os.WriteFile(path, []byte("token: file-token\n"), 0o644))

	t.Setenv("DIGITALOCEAN_TOKEN", "env-token")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.Token)
}

func TestValidate(t *testing.T) {
	err := Config{}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing API token")

	assert.NoError(t, Config{Token: "tok"}.Validate())
}

func TestClientConfig(t *testing.T) {
	cfg := Config{Token: "tok", APIURL: "https://do.example.test", Timeout: 5 * time.Second}
	cc := cfg.ClientConfig()
	assert.Equal(t, doapi.Config{
		Token:   "tok",
		BaseURL: "https://do.example.test",
		Timeout: 5 * time.Second,
	}, cc)
}

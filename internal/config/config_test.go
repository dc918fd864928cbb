package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "matura", RunE: func(*cobra.Command, []string) error { return nil }}
	RegisterFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(newCmd(t))
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, "pl", cfg.Lang)
	assert.Equal(t, "pretty", cfg.LogFormat)
	assert.Equal(t, filepath.Join(os.Getenv("XDG_STATE_HOME"), "matura", "matura.log"), cfg.LogFile)
	assert.Empty(t, cfg.ConfigFile)
}

func TestLoadPrecedence(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile("matura.yaml", []byte("api-url: http://file.example/\nlang: en\ntimeout: 3s\n"), 0o644))
	t.Setenv("MATURA_API_URL", "http://env.example")

	cfg, err := Load(newCmd(t))
	require.NoError(t, err)
	assert.Equal(t, "http://env.example", cfg.APIURL, "env beats file")
	assert.Equal(t, "en", cfg.Lang, "file beats default")
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.NotEmpty(t, cfg.ConfigFile)

	cfg, err = Load(newCmd(t, "--api-url", "http://flag.example/"))
	require.NoError(t, err)
	assert.Equal(t, "http://flag.example", cfg.APIURL, "flag beats env")
}

func TestLoadExplicitFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db: /tmp/x.db\n"), 0o644))

	cfg, err := Load(newCmd(t, "--config", path))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
	assert.Equal(t, path, cfg.ConfigFile)
}

func TestLoadRejectsBadValues(t *testing.T) {
	isolate(t)

	_, err := Load(newCmd(t, "--lang", "de"))
	assert.Error(t, err)

	_, err = Load(newCmd(t, "--timeout", "0s"))
	assert.Error(t, err)
}

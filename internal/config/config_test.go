package config_test

import (
	"bowshell/internal/config"
	"bowshell/pkg/navguard"
	"bowshell/pkg/serrors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, "127.0.0.1:7411", cfg.HTTP.Addr)
	require.Equal(t, 5*time.Second, cfg.GracefulShutdownTimeout)
	require.Equal(t, "bows", cfg.DeepLink.Scheme)
	require.Equal(t, navguard.DefaultPolicy(), cfg.NavigationPolicy())
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
environment: production
navigation:
  appOrigin: https://desk.example.org
  internalSchemes: [wails]
  denyAbout: true
  allowedHosts:
    - example.org
    - accounts.google.com
deepLink:
  scheme: desk
http:
  addr: 127.0.0.1:9000
  debug: true
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "127.0.0.1:9000", cfg.HTTP.Addr)
	require.True(t, cfg.HTTP.Debug)
	require.Equal(t, "/metrics", cfg.HTTP.MetricsPath)

	require.Equal(t, navguard.Policy{
		AppOrigin:       "https://desk.example.org",
		InternalSchemes: []string{"wails"},
		AllowAbout:      false,
		AllowedHosts:    []string{"example.org", "accounts.google.com"},
	}, cfg.NavigationPolicy())

	target, err := cfg.DeepLinkResolver().Resolve("desk://inbox")
	require.NoError(t, err)
	require.Equal(t, "https://desk.example.org/inbox", target)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("NAVIGATION_ALLOWED_HOSTS", "example.org,github.com")
	t.Setenv("HTTP_ADDR", "127.0.0.1:9100")

	cfg, err := config.Load("")
	require.NoError(t, err)

	require.Equal(t, "127.0.0.1:9100", cfg.HTTP.Addr)
	require.Equal(t, []string{"example.org", "github.com"}, cfg.NavigationPolicy().AllowedHosts)
}

func TestLoad_InvalidPolicy(t *testing.T) {
	path := writeConfig(t, `
navigation:
  allowedHosts: ["https://example.org"]
`)

	_, err := config.Load(path)
	require.ErrorIs(t, err, serrors.ErrInvalidPolicy)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}

package navguard_test

import (
	"bowshell/pkg/navguard"
	"bowshell/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultPolicy(t *testing.T) {
	p := navguard.DefaultPolicy()

	require.NoError(t, p.Validate())
	require.Equal(t, navguard.DefaultAppOrigin, p.AppOrigin)
	require.Equal(t, []string{"tauri", "asset"}, p.InternalSchemes)
	require.True(t, p.AllowAbout)
	require.Equal(t, []string{
		"app.bowsapp.com",
		"bowsapp.com",
		"accounts.google.com",
		"appleid.apple.com",
		"github.com",
		"login.microsoftonline.com",
		"auth0.com",
	}, p.AllowedHosts)

	require.Equal(t, p, navguard.Default().Policy())
}

func TestPolicy_Validate_Invalid(t *testing.T) {
	valid := navguard.DefaultPolicy

	tests := []struct {
		name   string
		mutate func(p *navguard.Policy)
	}{
		{"empty origin", func(p *navguard.Policy) { p.AppOrigin = "" }},
		{"relative origin", func(p *navguard.Policy) { p.AppOrigin = "app.bowsapp.com" }},
		{"origin with slash", func(p *navguard.Policy) { p.AppOrigin = "https://app.bowsapp.com/" }},
		{"origin with path", func(p *navguard.Policy) { p.AppOrigin = "https://app.bowsapp.com/app" }},
		{"origin with query", func(p *navguard.Policy) { p.AppOrigin = "https://app.bowsapp.com?x=1" }},
		{"origin with empty query", func(p *navguard.Policy) { p.AppOrigin = "https://app.bowsapp.com?" }},
		{"origin with userinfo", func(p *navguard.Policy) { p.AppOrigin = "https://me@app.bowsapp.com" }},
		{"uppercase scheme", func(p *navguard.Policy) { p.InternalSchemes = []string{"Tauri"} }},
		{"empty scheme", func(p *navguard.Policy) { p.InternalSchemes = []string{""} }},
		{"scheme with separator", func(p *navguard.Policy) { p.InternalSchemes = []string{"asset://"} }},
		{"empty host", func(p *navguard.Policy) { p.AllowedHosts = append(p.AllowedHosts, "") }},
		{"host with scheme", func(p *navguard.Policy) { p.AllowedHosts = append(p.AllowedHosts, "https://x.com") }},
		{"host with path", func(p *navguard.Policy) { p.AllowedHosts = append(p.AllowedHosts, "x.com/login") }},
		{"host with port", func(p *navguard.Policy) { p.AllowedHosts = append(p.AllowedHosts, "x.com:443") }},
		{"uppercase host", func(p *navguard.Policy) { p.AllowedHosts = append(p.AllowedHosts, "X.com") }},
		{"trailing dot", func(p *navguard.Policy) { p.AllowedHosts = append(p.AllowedHosts, "x.com.") }},
		{"leading dot", func(p *navguard.Policy) { p.AllowedHosts = append(p.AllowedHosts, ".x.com") }},
		{"whitespace", func(p *navguard.Policy) { p.AllowedHosts = append(p.AllowedHosts, "x .com") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid()
			tt.mutate(&p)

			require.ErrorIs(t, p.Validate(), serrors.ErrInvalidPolicy)

			g, err := navguard.New(p)
			require.ErrorIs(t, err, serrors.ErrInvalidPolicy)
			require.Nil(t, g)
		})
	}
}

func TestNew_CopiesPolicy(t *testing.T) {
	p := navguard.DefaultPolicy()
	g, err := navguard.New(p)
	require.NoError(t, err)

	// mutating the caller's policy must not widen the guard
	p.AllowedHosts[0] = "example.com"
	p.InternalSchemes[0] = "https"
	require.False(t, g.Allowed("https://example.com"))
	require.True(t, g.Allowed("tauri://localhost"))

	// nor must mutating a returned copy
	got := g.Policy()
	got.AllowedHosts[1] = "example.com"
	require.False(t, g.Allowed("https://example.com"))
}

func TestPolicy_Clone(t *testing.T) {
	p := navguard.DefaultPolicy()
	c := p.Clone()
	c.AllowedHosts[0] = "changed"

	require.Equal(t, "app.bowsapp.com", p.AllowedHosts[0])
}

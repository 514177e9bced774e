package navguard

import (
	"bowshell/pkg/serrors"
	"net/url"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/idna"
)

// DefaultAppOrigin is the canonical origin the shell loads its UI from.
const DefaultAppOrigin = "https://app.bowsapp.com"

// Policy is the data a Guard decides with. A Guard copies it on construction,
// so mutating a Policy after New has no effect on the guard.
type Policy struct {
	// AppOrigin is allowed unconditionally, together with any path, query or
	// fragment that follows it.
	AppOrigin string
	// InternalSchemes are the host runtime's own schemes (bundled UI, packaged
	// assets). "<scheme>://..." is allowed unconditionally.
	InternalSchemes []string
	// AllowAbout admits the browser-internal "about:" pseudo-scheme.
	AllowAbout bool
	// AllowedHosts is the ordered allowlist of domain suffixes. A host matches an
	// entry when it equals the entry or ends with "." + entry.
	AllowedHosts []string
}

// DefaultPolicy returns the compiled-in policy: the application's own domains
// plus the identity providers used for federated sign-in.
func DefaultPolicy() Policy {
	return Policy{
		AppOrigin:       DefaultAppOrigin,
		InternalSchemes: []string{"tauri", "asset"},
		AllowAbout:      true,
		AllowedHosts: []string{
			"app.bowsapp.com",
			"bowsapp.com",
			"accounts.google.com",
			"appleid.apple.com",
			"github.com",
			"login.microsoftonline.com",
			"auth0.com",
		},
	}
}

// Clone returns a deep copy of p.
func (p Policy) Clone() Policy {
	c := p
	c.InternalSchemes = append([]string(nil), p.InternalSchemes...)
	c.AllowedHosts = append([]string(nil), p.AllowedHosts...)

	return c
}

// Validate reports the first problem found in p. All returned errors are of
// kind serrors.ErrInvalidPolicy.
func (p Policy) Validate() error {
	_, err := p.normalized()

	return err
}

// normalized validates p and returns a copy whose internationalized host
// entries are mapped to their ASCII (punycode) form.
func (p Policy) normalized() (Policy, error) {
	if err := validateOrigin(p.AppOrigin); err != nil {
		return Policy{}, err
	}

	out := p.Clone()
	for i, s := range out.InternalSchemes {
		if !validScheme(s) {
			return Policy{}, serrors.With(serrors.ErrInvalidPolicy, "internal scheme %d: %q is not a valid lowercase scheme", i, s)
		}
	}

	for i, h := range out.AllowedHosts {
		norm, err := normalizeEntry(h)
		if err != nil {
			return Policy{}, serrors.Wrap(serrors.ErrInvalidPolicy, err, "allowed host %d (%q)", i, h)
		}
		out.AllowedHosts[i] = norm
	}

	return out, nil
}

func validateOrigin(origin string) error {
	if origin == "" {
		return serrors.With(serrors.ErrInvalidPolicy, "app origin must not be empty")
	}

	u, err := url.Parse(origin)
	if err != nil {
		return serrors.Wrap(serrors.ErrInvalidPolicy, err, "app origin")
	}
	if u.Scheme == "" || u.Host == "" {
		return serrors.With(serrors.ErrInvalidPolicy, "app origin %q must be absolute", origin)
	}
	if u.User != nil || u.Path != "" || u.RawQuery != "" || u.Fragment != "" || u.Opaque != "" ||
		strings.HasSuffix(origin, "?") || strings.HasSuffix(origin, "#") {
		return serrors.With(serrors.ErrInvalidPolicy, "app origin %q must be scheme://host[:port] only", origin)
	}

	return nil
}

// validScheme follows RFC 3986 scheme syntax, restricted to lowercase.
func validScheme(s string) bool {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '+', c == '-', c == '.':
		default:
			return false
		}
	}

	return true
}

type entryError string

func (e entryError) Error() string { return string(e) }

const (
	errEntryEmpty     = entryError("empty entry")
	errEntryScheme    = entryError("must not contain a scheme")
	errEntryPath      = entryError("must not contain a path, query or fragment")
	errEntryPort      = entryError("must not contain a port or userinfo")
	errEntrySpace     = entryError("must not contain whitespace")
	errEntryDot       = entryError("must not start or end with a dot")
	errEntryUppercase = entryError("must be lowercase")
)

func normalizeEntry(h string) (string, error) {
	switch {
	case h == "":
		return "", errEntryEmpty
	case strings.Contains(h, "://"):
		return "", errEntryScheme
	case strings.ContainsAny(h, "/?#"):
		return "", errEntryPath
	case strings.ContainsAny(h, ":@"):
		return "", errEntryPort
	case strings.ContainsAny(h, " \t\r\n"):
		return "", errEntrySpace
	case strings.HasPrefix(h, ".") || strings.HasSuffix(h, "."):
		return "", errEntryDot
	}

	if isASCII(h) {
		if strings.ToLower(h) != h {
			return "", errEntryUppercase
		}

		return h, nil
	}

	return idna.Lookup.ToASCII(h)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}

	return true
}

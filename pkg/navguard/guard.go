package navguard

import (
	"net/url"
	"strings"

	"golang.org/x/net/idna"
)

// Decision is the outcome of one evaluation. The zero value is Block.
type Decision uint8

const (
	// Block cancels the navigation.
	Block Decision = iota
	// Allow lets the navigation proceed.
	Allow
)

func (d Decision) String() string {
	if d == Allow {
		return "ALLOW"
	}

	return "BLOCK"
}

// Verdict is the result of Guard.Evaluate.
type Verdict struct {
	Decision Decision
	// URL is the rejected candidate, exactly as passed in. Empty for Allow.
	URL string
}

// Allowed reports whether the navigation may proceed.
func (v Verdict) Allowed() bool { return v.Decision == Allow }

func (v Verdict) String() string {
	if v.Allowed() {
		return Allow.String()
	}

	return Block.String() + "(" + v.URL + ")"
}

// rule admits a candidate by looking at its raw text, before any parsing.
type rule func(candidate string) bool

// Guard decides whether the primary webview may load a URL.
// It holds no mutable state and is safe for concurrent use.
type Guard struct {
	policy Policy
	rules  []rule
}

// New validates p and returns a guard enforcing a private copy of it.
func New(p Policy) (*Guard, error) {
	norm, err := p.normalized()
	if err != nil {
		return nil, err
	}

	g := &Guard{policy: norm}

	// order matters: the app origin, then internal schemes, then about:
	g.rules = append(g.rules, originRule(norm.AppOrigin))
	for _, s := range norm.InternalSchemes {
		g.rules = append(g.rules, prefixRule(s+"://"))
	}
	if norm.AllowAbout {
		g.rules = append(g.rules, prefixRule("about:"))
	}

	return g, nil
}

// Default returns a guard enforcing DefaultPolicy.
func Default() *Guard {
	g, err := New(DefaultPolicy())
	if err != nil {
		panic("navguard: invalid default policy: " + err.Error())
	}

	return g
}

// Policy returns a copy of the policy the guard enforces.
func (g *Guard) Policy() Policy { return g.policy.Clone() }

// Allowed is shorthand for Evaluate(candidate).Allowed().
func (g *Guard) Allowed(candidate string) bool { return g.Evaluate(candidate).Allowed() }

// Evaluate returns Allow when candidate passes a prefix rule or its host
// matches an allowlist entry, and Block otherwise. Input that cannot be parsed
// as an absolute URL with a host is blocked.
func (g *Guard) Evaluate(candidate string) Verdict {
	for _, r := range g.rules {
		if r(candidate) {
			return Verdict{Decision: Allow}
		}
	}

	host, ok := hostOf(candidate)
	if !ok {
		return Verdict{Decision: Block, URL: candidate}
	}

	for _, entry := range g.policy.AllowedHosts {
		if MatchHost(host, entry) {
			return Verdict{Decision: Allow}
		}
	}

	return Verdict{Decision: Block, URL: candidate}
}

// MatchHost reports whether host equals entry or is a subdomain of it.
// "mail.google.com" matches "google.com"; "evilgoogle.com" and
// "google.com.evil.net" do not.
func MatchHost(host, entry string) bool {
	if host == entry {
		return true
	}

	return len(host) > len(entry) &&
		host[len(host)-len(entry)-1] == '.' &&
		strings.HasSuffix(host, entry)
}

func prefixRule(prefix string) rule {
	return func(candidate string) bool {
		return strings.HasPrefix(candidate, prefix)
	}
}

// originRule matches the origin itself or the origin followed by a path, query
// or fragment, so "https://app.example.com.evil.net" is left to host matching.
func originRule(origin string) rule {
	return func(candidate string) bool {
		rest, ok := strings.CutPrefix(candidate, origin)
		if !ok {
			return false
		}

		return rest == "" || rest[0] == '/' || rest[0] == '?' || rest[0] == '#'
	}
}

// hostOf extracts the host of an absolute URL the way a browser sees it:
// lowercased, internationalized names in punycode.
func hostOf(candidate string) (string, bool) {
	u, err := url.Parse(candidate)
	if err != nil || u.Scheme == "" {
		return "", false
	}

	host := u.Hostname()
	if host == "" {
		return "", false
	}

	if isASCII(host) {
		return strings.ToLower(host), true
	}

	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return "", false
	}

	return ascii, true
}

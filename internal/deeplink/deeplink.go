// Package deeplink maps links delivered through the shell's custom URL scheme
// onto pages of the web application.
package deeplink

import (
	"bowshell/pkg/serrors"
	"strings"
)

// DefaultScheme is the scheme the shell registers with the operating system.
const DefaultScheme = "bows"

// Resolver turns "<Scheme>://<rest>" into "<Origin>/<rest>".
type Resolver struct {
	Scheme string
	Origin string
}

// NewResolver returns a resolver for scheme, targeting origin.
func NewResolver(scheme, origin string) Resolver {
	return Resolver{
		Scheme: scheme,
		Origin: strings.TrimSuffix(origin, "/"),
	}
}

// Resolve returns the application URL link points at. Links of any other
// scheme are rejected with serrors.ErrBadRequest.
func (r Resolver) Resolve(link string) (string, error) {
	rest, ok := strings.CutPrefix(link, r.Scheme+"://")
	if !ok || r.Scheme == "" {
		return "", serrors.With(serrors.ErrBadRequest, "not a %s:// link: %q", r.Scheme, link)
	}

	return r.Origin + "/" + strings.TrimPrefix(rest, "/"), nil
}

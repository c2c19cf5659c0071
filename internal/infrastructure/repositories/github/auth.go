package github

import (
	"net/http"
	"strings"
)

// AuthScheme is the Authorization header scheme used for API calls.
// GitHub still honors the legacy "token" scheme for classic and
// fine-grained personal access tokens, while app-issued installation and
// user-to-server tokens use the bearer scheme.
type AuthScheme string

const (
	AuthSchemeLegacy AuthScheme = "token"
	AuthSchemeBearer AuthScheme = "Bearer"
)

// DetectAuthScheme resolves the scheme from the token's prefix family.
// The choice is made once, at client construction.
func DetectAuthScheme(token string) AuthScheme {
	if strings.HasPrefix(token, "ghs_") || strings.HasPrefix(token, "ghu_") {
		return AuthSchemeBearer
	}
	return AuthSchemeLegacy
}

// authTransport applies the resolved scheme to every request.
type authTransport struct {
	scheme AuthScheme
	token  string
	base   http.RoundTripper
}

func newAuthTransport(scheme AuthScheme, token string) *authTransport {
	return &authTransport{
		scheme: scheme,
		token:  token,
		base:   http.DefaultTransport,
	}
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", string(t.scheme)+" "+t.token)
	return t.base.RoundTrip(clone)
}

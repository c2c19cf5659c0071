//go:build unit

package github

import "net/http"

// NewAuthTransportForTest exposes the auth transport to external tests.
func NewAuthTransportForTest(scheme AuthScheme, token string, base http.RoundTripper) http.RoundTripper {
	transport := newAuthTransport(scheme, token)
	if base != nil {
		transport.base = base
	}
	return transport
}

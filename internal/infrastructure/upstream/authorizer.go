package upstream

import (
	"net/http"
	"strings"

	"github.com/dkcommerce/storefront-gateway/internal/core/ports"
)

// skipPaths are the endpoints that must never receive a bearer header: the
// identity endpoints themselves.
var skipPaths = []string{"/auth/login", "/auth/register"}

// AuthorizeTransport attaches bearer authorization to outgoing requests.
// The header is added iff a token is present, the target path is not an
// identity endpoint, and the request does not already carry one. The
// caller's request is never mutated; authorized requests are clones.
type AuthorizeTransport struct {
	Base   http.RoundTripper
	Tokens ports.TokenReader
	// Skip overrides the excluded path fragments; defaults to skipPaths.
	Skip []string
}

func (t *AuthorizeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, ok := t.Tokens.Token(req.Context())
	if ok && !t.excluded(req.URL.Path) && req.Header.Get("Authorization") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+strings.TrimSpace(token))
	}
	return t.base().RoundTrip(req)
}

func (t *AuthorizeTransport) excluded(path string) bool {
	skip := t.Skip
	if skip == nil {
		skip = skipPaths
	}
	for _, p := range skip {
		if strings.Contains(path, p) {
			return true
		}
	}
	return false
}

func (t *AuthorizeTransport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

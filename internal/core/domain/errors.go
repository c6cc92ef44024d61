package domain

import "errors"

var ErrUnauthorized = errors.New("unauthorized")
var ErrForbidden = errors.New("access forbidden")
var ErrNotFound = errors.New("resource not found")
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrNoTokenInResponse is returned by login/register only when the session is
// configured to require a token; by default a tokenless 2xx is a partial
// success and no error is raised.
var ErrNoTokenInResponse = errors.New("no token in auth response")

// ErrUpstream wraps any catalog API failure that does not map to a more
// specific sentinel.
var ErrUpstream = errors.New("upstream request failed")

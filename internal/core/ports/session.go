package ports

import (
	"context"

	"github.com/dkcommerce/storefront-gateway/internal/core/domain"
)

// Credentials are the login form fields.
type Credentials struct {
	Email    string
	Password string
}

// Registration are the sign-up form fields.
type Registration struct {
	Name        string
	Email       string
	PhoneNumber string
	Password    string
}

// AuthPayload is what the identity client hands back: the decoded principal
// plus the raw response body, kept so the session service can run its token
// fallback search over whatever shape the upstream returned.
type AuthPayload struct {
	Principal *domain.Principal
	Body      map[string]any
}

// IdentityClient talks to the remote identity endpoints.
type IdentityClient interface {
	Login(ctx context.Context, creds Credentials) (*AuthPayload, error)
	Register(ctx context.Context, reg Registration) (*AuthPayload, error)
}

// SessionService is the single source of truth for authentication state.
type SessionService interface {
	TokenReader

	Login(ctx context.Context, creds Credentials) (*domain.Principal, error)
	Register(ctx context.Context, reg Registration) (*domain.Principal, error)
	IsLoggedIn(ctx context.Context) bool
	IsTokenExpired(ctx context.Context) bool
	// ValidateOrLogout is the single authority callers should use before
	// treating a session as valid: a missing or expired token logs the
	// session out and returns false.
	ValidateOrLogout(ctx context.Context) bool
	Logout(ctx context.Context) error
	// Principal returns the in-memory current user, nil when anonymous or
	// after a process restart.
	Principal() *domain.Principal
}

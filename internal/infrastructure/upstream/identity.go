package upstream

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/dkcommerce/storefront-gateway/internal/core/domain"
	"github.com/dkcommerce/storefront-gateway/internal/core/ports"
)

// Login authenticates against POST /auth/login. The raw body is preserved in
// the payload so the session service can run its token fallback search over
// whichever shape the identity endpoint returned.
func (c *Client) Login(ctx context.Context, creds ports.Credentials) (*ports.AuthPayload, error) {
	body := map[string]string{
		"email":    creds.Email,
		"password": creds.Password,
	}

	var raw map[string]any
	if err := c.postJSON(ctx, "/auth/login", body, &raw); err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	return &ports.AuthPayload{Principal: principalFrom(raw), Body: raw}, nil
}

// Register creates an account against POST /auth/register.
func (c *Client) Register(ctx context.Context, reg ports.Registration) (*ports.AuthPayload, error) {
	body := map[string]string{
		"name":        reg.Name,
		"email":       reg.Email,
		"phoneNumber": reg.PhoneNumber,
		"password":    reg.Password,
	}

	var raw map[string]any
	if err := c.postJSON(ctx, "/auth/register", body, &raw); err != nil {
		return nil, err
	}

	return &ports.AuthPayload{Principal: principalFrom(raw), Body: raw}, nil
}

// principalFrom maps the response body onto a Principal. The contract does
// not pin where the user record lives, so the top level is tried first, then
// a nested "user" object.
func principalFrom(raw map[string]any) *domain.Principal {
	p := decodePrincipal(raw)
	if p.ID == "" && p.Name == "" && p.Email == "" {
		if nested, ok := raw["user"].(map[string]any); ok {
			p = decodePrincipal(nested)
		}
	}
	return &p
}

func decodePrincipal(m map[string]any) domain.Principal {
	var p domain.Principal
	buf, err := json.Marshal(m)
	if err != nil {
		return p
	}
	_ = json.Unmarshal(buf, &p)
	return p
}

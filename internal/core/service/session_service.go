package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/dkcommerce/storefront-gateway/internal/api/metrics"
	"github.com/dkcommerce/storefront-gateway/internal/core/domain"
	"github.com/dkcommerce/storefront-gateway/internal/core/ports"
)

// tokenFields is the ordered fallback search for a token in an auth
// response: flat fields first, then the nested data.token path.
var tokenFields = []string{"token", "accessToken", "jwt"}

// SessionService is the single source of truth for authentication state and
// the sole writer of the token store.
type SessionService struct {
	store    ports.TokenStore
	identity ports.IdentityClient
	// requireToken turns a 2xx auth response with no extractable token into
	// a hard failure. Off by default: the observed behavior is a silent
	// partial success, pending a product decision.
	requireToken bool
	log          zerolog.Logger

	mu        sync.RWMutex
	principal *domain.Principal
}

func NewSessionService(store ports.TokenStore, identity ports.IdentityClient, requireToken bool, log zerolog.Logger) *SessionService {
	return &SessionService{
		store:        store,
		identity:     identity,
		requireToken: requireToken,
		log:          log,
	}
}

// Login authenticates against the identity endpoint. On success the token is
// written to the store before the principal becomes visible, so a subsequent
// read by the guard or the authorizer always sees the new token.
func (s *SessionService) Login(ctx context.Context, creds ports.Credentials) (*domain.Principal, error) {
	payload, err := s.identity.Login(ctx, creds)
	if err != nil {
		return nil, err
	}

	if err := s.storeExtracted(ctx, payload.Body); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.principal = payload.Principal
	s.mu.Unlock()

	return payload.Principal, nil
}

// Register creates an account. The same token fallback applies; the current
// user is not published on registration.
func (s *SessionService) Register(ctx context.Context, reg ports.Registration) (*domain.Principal, error) {
	payload, err := s.identity.Register(ctx, reg)
	if err != nil {
		return nil, err
	}

	if err := s.storeExtracted(ctx, payload.Body); err != nil {
		return nil, err
	}
	return payload.Principal, nil
}

// storeExtracted runs the fallback search and persists a hit. A miss is not
// an error unless the service is configured to require a token.
func (s *SessionService) storeExtracted(ctx context.Context, body map[string]any) error {
	token, ok := extractToken(body)
	if !ok {
		metrics.TokenExtractionMissesTotal.Inc()
		s.log.Warn().Msg("auth response contained no recognisable token field")
		if s.requireToken {
			return domain.ErrNoTokenInResponse
		}
		return nil
	}
	if err := s.store.Set(ctx, token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	return nil
}

// extractToken searches the response body in fallback order: token,
// accessToken, jwt, then data.token.
func extractToken(body map[string]any) (string, bool) {
	for _, field := range tokenFields {
		if tk, ok := body[field].(string); ok && tk != "" {
			return tk, true
		}
	}
	if data, ok := body["data"].(map[string]any); ok {
		if tk, ok := data["token"].(string); ok && tk != "" {
			return tk, true
		}
	}
	return "", false
}

// Token reads the stored token. Store errors are logged and reported as
// absence; callers only ever see present/absent.
func (s *SessionService) Token(ctx context.Context) (string, bool) {
	token, present, err := s.store.Get(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("token store read failed")
		return "", false
	}
	return token, present
}

// IsLoggedIn reports token presence, nothing more.
func (s *SessionService) IsLoggedIn(ctx context.Context) bool {
	_, present := s.Token(ctx)
	return present
}

// IsTokenExpired inspects the token's exp claim, interpreted as epoch
// seconds. A missing token counts as expired; a malformed token (wrong
// segment count, undecodable payload, or no exp claim) does not. Only the
// claims segment is decoded; the header and signature are never looked at,
// so a garbage header does not mask an expired payload.
func (s *SessionService) IsTokenExpired(ctx context.Context) bool {
	raw, present := s.Token(ctx)
	if !present {
		return true
	}

	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		return false
	}
	seg, err := jwt.NewParser(jwt.WithPaddingAllowed()).DecodeSegment(parts[1])
	if err != nil {
		return false
	}
	claims := jwt.MapClaims{}
	if err := json.Unmarshal(seg, &claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Unix() < time.Now().Unix()
}

// ValidateOrLogout is the single authority callers use before treating a
// session as valid: missing or expired tokens log the session out.
func (s *SessionService) ValidateOrLogout(ctx context.Context) bool {
	if !s.IsLoggedIn(ctx) || s.IsTokenExpired(ctx) {
		_ = s.Logout(ctx)
		return false
	}
	return true
}

// Logout clears the token store and the current user. Idempotent: logging
// out an anonymous session is a no-op.
func (s *SessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.principal = nil
	s.mu.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

// Principal returns the in-memory current user. Nil when anonymous; also nil
// after a restart, since only the token survives the process.
func (s *SessionService) Principal() *domain.Principal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.principal
}

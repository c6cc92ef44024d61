package service

import (
	"context"
	"encoding/base64"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/dkcommerce/storefront-gateway/internal/core/domain"
	"github.com/dkcommerce/storefront-gateway/internal/core/ports"
)

// memTokenStore is an in-memory TokenStore for tests.
type memTokenStore struct {
	mu      sync.Mutex
	token   string
	present bool
	changes chan ports.TokenChange
}

func newMemTokenStore() *memTokenStore {
	return &memTokenStore{changes: make(chan ports.TokenChange, 16)}
}

func (s *memTokenStore) Get(context.Context) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.present, nil
}

func (s *memTokenStore) Set(_ context.Context, token string) error {
	s.mu.Lock()
	s.token, s.present = token, true
	s.mu.Unlock()
	s.changes <- ports.TokenChange{Token: token, Present: true}
	return nil
}

func (s *memTokenStore) Clear(context.Context) error {
	s.mu.Lock()
	s.token, s.present = "", false
	s.mu.Unlock()
	s.changes <- ports.TokenChange{}
	return nil
}

func (s *memTokenStore) Changes() <-chan ports.TokenChange {
	return s.changes
}

type stubIdentity struct {
	body      map[string]any
	principal *domain.Principal
	err       error
}

func (i *stubIdentity) Login(context.Context, ports.Credentials) (*ports.AuthPayload, error) {
	if i.err != nil {
		return nil, i.err
	}
	return &ports.AuthPayload{Principal: i.principal, Body: i.body}, nil
}

func (i *stubIdentity) Register(context.Context, ports.Registration) (*ports.AuthPayload, error) {
	return i.Login(context.Background(), ports.Credentials{})
}

func newSession(store ports.TokenStore, identity ports.IdentityClient, requireToken bool) *SessionService {
	return NewSessionService(store, identity, requireToken, zerolog.Nop())
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return raw
}

func TestSessionService_Login_StoresToken(t *testing.T) {
	store := newMemTokenStore()
	svc := newSession(store, &stubIdentity{
		body:      map[string]any{"token": "abc.def.ghi", "email": "alice@example.com"},
		principal: &domain.Principal{Email: "alice@example.com"},
	}, false)

	user, err := svc.Login(context.Background(), ports.Credentials{Email: "alice@example.com", Password: "pass123"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if user == nil || user.Email != "alice@example.com" {
		t.Fatalf("unexpected principal: %+v", user)
	}

	token, ok := svc.Token(context.Background())
	if !ok || token != "abc.def.ghi" {
		t.Fatalf("expected stored token, got %q (present=%v)", token, ok)
	}
	if got, present, _ := store.Get(context.Background()); !present || got != "abc.def.ghi" {
		t.Fatalf("store holds %q (present=%v)", got, present)
	}
	if svc.Principal() == nil {
		t.Fatalf("expected principal to be published")
	}
}

func TestSessionService_TokenFallbackOrder(t *testing.T) {
	// accessToken outranks the nested data.token.
	store := newMemTokenStore()
	svc := newSession(store, &stubIdentity{
		body: map[string]any{
			"accessToken": "flat-token",
			"data":        map[string]any{"token": "nested-token"},
		},
		principal: &domain.Principal{},
	}, false)

	if _, err := svc.Login(context.Background(), ports.Credentials{}); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token, _ := svc.Token(context.Background()); token != "flat-token" {
		t.Fatalf("expected flat accessToken to win, got %q", token)
	}
}

func TestSessionService_TokenFallbackNested(t *testing.T) {
	store := newMemTokenStore()
	svc := newSession(store, &stubIdentity{
		body:      map[string]any{"data": map[string]any{"token": "nested-token"}},
		principal: &domain.Principal{},
	}, false)

	if _, err := svc.Login(context.Background(), ports.Credentials{}); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token, _ := svc.Token(context.Background()); token != "nested-token" {
		t.Fatalf("expected nested data.token, got %q", token)
	}
}

func TestSessionService_Login_TokenlessSuccess(t *testing.T) {
	// A 2xx response with no token field is still a success by default;
	// the principal is published and nothing is stored.
	store := newMemTokenStore()
	svc := newSession(store, &stubIdentity{
		body:      map[string]any{"email": "bob@example.com"},
		principal: &domain.Principal{Email: "bob@example.com"},
	}, false)

	user, err := svc.Login(context.Background(), ports.Credentials{})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if user == nil {
		t.Fatalf("expected principal")
	}
	if svc.IsLoggedIn(context.Background()) {
		t.Fatalf("no token should be stored")
	}
}

func TestSessionService_Login_RequireToken(t *testing.T) {
	store := newMemTokenStore()
	svc := newSession(store, &stubIdentity{
		body:      map[string]any{"email": "bob@example.com"},
		principal: &domain.Principal{},
	}, true)

	if _, err := svc.Login(context.Background(), ports.Credentials{}); err != domain.ErrNoTokenInResponse {
		t.Fatalf("expected ErrNoTokenInResponse, got %v", err)
	}
	if svc.Principal() != nil {
		t.Fatalf("principal must not be published on hard failure")
	}
}

func TestSessionService_Register_DoesNotPublishPrincipal(t *testing.T) {
	store := newMemTokenStore()
	svc := newSession(store, &stubIdentity{
		body:      map[string]any{"jwt": "x.y.z"},
		principal: &domain.Principal{Email: "new@example.com"},
	}, false)

	if _, err := svc.Register(context.Background(), ports.Registration{}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if token, _ := svc.Token(context.Background()); token != "x.y.z" {
		t.Fatalf("expected token from jwt field, got %q", token)
	}
	if svc.Principal() != nil {
		t.Fatalf("registration must not set the current user")
	}
}

func TestSessionService_IsTokenExpired_Missing(t *testing.T) {
	svc := newSession(newMemTokenStore(), &stubIdentity{}, false)
	if !svc.IsTokenExpired(context.Background()) {
		t.Fatalf("missing token must report expired")
	}
}

func TestSessionService_IsTokenExpired_Malformed(t *testing.T) {
	// One segment, not a JWT: fail-open, treated as not expired.
	store := newMemTokenStore()
	_ = store.Set(context.Background(), "not-a-jwt")
	svc := newSession(store, &stubIdentity{}, false)

	if svc.IsTokenExpired(context.Background()) {
		t.Fatalf("malformed token must report not expired")
	}
}

func TestSessionService_IsTokenExpired_GarbageHeader(t *testing.T) {
	// Only the claims segment matters: an undecodable header must not mask
	// an expired payload.
	store := newMemTokenStore()
	claims := base64.RawURLEncoding.EncodeToString([]byte(`{"exp":1}`))
	_ = store.Set(context.Background(), "!!!."+claims+".sig")
	svc := newSession(store, &stubIdentity{}, false)

	if !svc.IsTokenExpired(context.Background()) {
		t.Fatalf("expired payload behind a garbage header must report expired")
	}
}

func TestSessionService_IsTokenExpired_PaddedSegment(t *testing.T) {
	store := newMemTokenStore()
	claims := base64.URLEncoding.EncodeToString([]byte(`{"exp":1}`)) // padded
	_ = store.Set(context.Background(), "h."+claims+".sig")
	svc := newSession(store, &stubIdentity{}, false)

	if !svc.IsTokenExpired(context.Background()) {
		t.Fatalf("padded claims segment must still decode and report expired")
	}
}

func TestSessionService_IsTokenExpired_NoExpClaim(t *testing.T) {
	store := newMemTokenStore()
	_ = store.Set(context.Background(), signedToken(t, jwt.MapClaims{"sub": "alice"}))
	svc := newSession(store, &stubIdentity{}, false)

	if svc.IsTokenExpired(context.Background()) {
		t.Fatalf("token without exp must report not expired")
	}
}

func TestSessionService_IsTokenExpired_Computed(t *testing.T) {
	store := newMemTokenStore()
	svc := newSession(store, &stubIdentity{}, false)

	_ = store.Set(context.Background(), signedToken(t, jwt.MapClaims{
		"exp": time.Now().Add(-time.Second).Unix(),
	}))
	if !svc.IsTokenExpired(context.Background()) {
		t.Fatalf("past exp must report expired")
	}

	_ = store.Set(context.Background(), signedToken(t, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}))
	if svc.IsTokenExpired(context.Background()) {
		t.Fatalf("future exp must report not expired")
	}
}

func TestSessionService_ValidateOrLogout(t *testing.T) {
	store := newMemTokenStore()
	svc := newSession(store, &stubIdentity{}, false)

	if svc.ValidateOrLogout(context.Background()) {
		t.Fatalf("anonymous session must not validate")
	}

	_ = store.Set(context.Background(), signedToken(t, jwt.MapClaims{
		"exp": time.Now().Add(-time.Minute).Unix(),
	}))
	if svc.ValidateOrLogout(context.Background()) {
		t.Fatalf("expired session must not validate")
	}
	if svc.IsLoggedIn(context.Background()) {
		t.Fatalf("expired session must be logged out")
	}

	_ = store.Set(context.Background(), signedToken(t, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}))
	if !svc.ValidateOrLogout(context.Background()) {
		t.Fatalf("valid session must validate")
	}
}

func TestSessionService_Logout_Idempotent(t *testing.T) {
	store := newMemTokenStore()
	svc := newSession(store, &stubIdentity{
		body:      map[string]any{"token": "a.b.c"},
		principal: &domain.Principal{Email: "alice@example.com"},
	}, false)

	if _, err := svc.Login(context.Background(), ports.Credentials{}); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	if err := svc.Logout(context.Background()); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if _, ok := svc.Token(context.Background()); ok {
		t.Fatalf("token must be absent after logout")
	}
	if svc.Principal() != nil {
		t.Fatalf("principal must be cleared on logout")
	}

	// Second logout must not fail and must leave state unchanged.
	if err := svc.Logout(context.Background()); err != nil {
		t.Fatalf("second Logout returned error: %v", err)
	}
	if _, ok := svc.Token(context.Background()); ok {
		t.Fatalf("token must stay absent")
	}
}

func TestSessionService_LoginFailure_LeavesStoreUntouched(t *testing.T) {
	store := newMemTokenStore()
	_ = store.Set(context.Background(), "existing.token.value")
	svc := newSession(store, &stubIdentity{err: domain.ErrInvalidCredentials}, false)

	if _, err := svc.Login(context.Background(), ports.Credentials{}); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if token, _ := svc.Token(context.Background()); token != "existing.token.value" {
		t.Fatalf("failed login must not mutate the token store")
	}
}

package ports

import "context"

// TokenChange is published on every token store mutation.
type TokenChange struct {
	Token   string
	Present bool
}

// TokenStore is a dumb durable container for the single session bearer token.
// It enforces no expiry and holds at most one value, under a fixed key.
type TokenStore interface {
	// Get returns the stored token and whether one is present.
	Get(ctx context.Context) (string, bool, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
	// Changes streams mutations. The stream is best-effort: slow consumers
	// miss intermediate values rather than block writers.
	Changes() <-chan TokenChange
}

// TokenReader is the read-only accessor other components use. The session
// service is the only writer of the token store; everything else reads
// through this.
type TokenReader interface {
	Token(ctx context.Context) (string, bool)
}

package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dkcommerce/storefront-gateway/internal/core/ports"
)

// TokenReader is the read-only token accessor handed to the request
// authorizer. It behaves exactly like SessionService.Token: store errors are
// logged and reported as absence, so consumers only ever see present/absent.
type TokenReader struct {
	store ports.TokenStore
	log   zerolog.Logger
}

func NewTokenReader(store ports.TokenStore, log zerolog.Logger) *TokenReader {
	return &TokenReader{store: store, log: log}
}

func (r *TokenReader) Token(ctx context.Context) (string, bool) {
	token, present, err := r.store.Get(ctx)
	if err != nil {
		r.log.Error().Err(err).Msg("token store read failed")
		return "", false
	}
	return token, present
}

// Package authz is the administrator gate in front of every mutating
// operation. The caller's API token travels in the request context and
// is checked against a bcrypt hash from configuration, so the plain
// token never sits in the environment of a running process.
package authz

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/clayhaus/backoffice/internal/fault"
)

type tokenKey struct{}

// WithToken returns a context carrying the caller's admin token.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func tokenFromContext(ctx context.Context) string {
	tok, _ := ctx.Value(tokenKey{}).(string)
	return tok
}

// TokenAuthorizer validates context tokens against one configured
// bcrypt hash.
type TokenAuthorizer struct {
	hash []byte
}

func NewTokenAuthorizer(bcryptHash string) *TokenAuthorizer {
	return &TokenAuthorizer{hash: []byte(bcryptHash)}
}

// RequireAdmin aborts the operation unless the context carries a token
// matching the configured hash.
func (a *TokenAuthorizer) RequireAdmin(ctx context.Context) error {
	tok := tokenFromContext(ctx)
	if tok == "" || len(a.hash) == 0 {
		return fault.New(fault.Unauthorized, "administrator access required")
	}
	if err := bcrypt.CompareHashAndPassword(a.hash, []byte(tok)); err != nil {
		return fault.New(fault.Unauthorized, "administrator access required")
	}
	return nil
}

// Package auth keeps console sign-ins alive: backend bearer tokens live in
// redis keyed by console session id, and the session id travels in a signed
// JWT issued to the browser.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"ruyatech/internal/client"
)

// Store keeps backend bearer tokens keyed by console session id. It is the
// server-side stand-in for the browser's local storage: one token per
// signed-in session, expiring with it.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

func tokenKey(sessionID string) string {
	return "session:token:" + sessionID
}

// Save stores the backend token for a session, refreshing its TTL.
func (s *Store) Save(ctx context.Context, sessionID, token string) error {
	if err := s.rdb.Set(ctx, tokenKey(sessionID), token, s.ttl).Err(); err != nil {
		return fmt.Errorf("save session token: %w", err)
	}
	return nil
}

// Token returns the backend token for a session, or empty when the session
// is unknown or expired. Callers treat empty as "not signed in".
func (s *Store) Token(ctx context.Context, sessionID string) (string, error) {
	token, err := s.rdb.Get(ctx, tokenKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load session token: %w", err)
	}
	return token, nil
}

// Delete ends a session.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	if err := s.rdb.Del(ctx, tokenKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("delete session token: %w", err)
	}
	return nil
}

// SessionCredentials adapts one console session to the backend client's
// credential provider.
type SessionCredentials struct {
	store     *Store
	sessionID string
}

func Credentials(store *Store, sessionID string) SessionCredentials {
	return SessionCredentials{store: store, sessionID: sessionID}
}

func (c SessionCredentials) Token(ctx context.Context) (string, error) {
	if c.store == nil || c.sessionID == "" {
		return "", nil
	}
	return c.store.Token(ctx, c.sessionID)
}

type contextKey struct{}

// WithSessionID stamps the console session id onto a request context so the
// shared backend client can resolve the caller's token.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, contextKey{}, sessionID)
}

// SessionIDFromContext returns the session id stamped by the middleware, or
// empty for anonymous requests.
func SessionIDFromContext(ctx context.Context) string {
	if sid, ok := ctx.Value(contextKey{}).(string); ok {
		return sid
	}
	return ""
}

// ContextCredentials resolves the bearer token for whichever console session
// issued the current request. One shared backend client can serve every
// request through this provider; there is no storage side-channel.
type ContextCredentials struct {
	Store *Store
}

var _ client.CredentialProvider = ContextCredentials{}

func (p ContextCredentials) Token(ctx context.Context) (string, error) {
	sessionID := SessionIDFromContext(ctx)
	if sessionID == "" || p.Store == nil {
		return "", nil
	}
	return p.Store.Token(ctx, sessionID)
}

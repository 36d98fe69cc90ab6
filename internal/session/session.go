// Package session adapts the stateless backend clients into per-view state:
// one focused entity, a loading flag, and the last user-facing error. Edit
// and detail views hold a session; list views fetch and aggregate directly.
package session

import (
	"context"
	"sync"

	"ruyatech/internal/client"
	"ruyatech/internal/i18n"
)

// state carries the flags every session exposes to its view. Each action
// sets the loading flag for its duration and clears it on the way out;
// errors overwrite the banner message, last one wins.
type state struct {
	mu      sync.Mutex
	loading bool
	lastErr string
}

func (s *state) begin() {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
}

func (s *state) finish() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func (s *state) fail(msg string) {
	s.mu.Lock()
	s.lastErr = msg
	s.mu.Unlock()
}

func (s *state) clearErr() {
	s.mu.Lock()
	s.lastErr = ""
	s.mu.Unlock()
}

// Loading reports whether an action is in flight.
func (s *state) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err is the banner message from the most recent failed action, empty after
// a success.
func (s *state) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// deps are the collaborators shared by every session kind.
type deps struct {
	creds  client.CredentialProvider
	msgs   *i18n.Catalog
	locale string
}

func (d deps) message(key string) string {
	if d.msgs == nil {
		return key
	}
	return d.msgs.T(d.locale, key)
}

// requireToken guards transition methods: without a bearer token the action
// fails here, before any client call is made.
func (d deps) requireToken(ctx context.Context) error {
	if d.creds == nil {
		return client.ErrNoToken
	}
	token, err := d.creds.Token(ctx)
	if err != nil {
		return err
	}
	if token == "" {
		return client.ErrNoToken
	}
	return nil
}

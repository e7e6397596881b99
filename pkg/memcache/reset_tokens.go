package memcache

import (
	"sync"
	"time"
)

// ResetTokenStore holds single-use password-reset tokens. Tokens are
// in-process only; a restart invalidates outstanding resets, which is
// acceptable for a 15-minute TTL flow.
type ResetTokenStore interface {
	Set(token string, userEmail string, ttl time.Duration)

	// Consume returns the email bound to token if it has not expired and
	// removes it (single use). Returns "" when missing or expired.
	Consume(token string) string

	// Peek reads without consuming.
	Peek(token string) (string, bool)
}

type entry struct {
	email     string
	expiresAt time.Time
}

type ResetTokens struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewResetTokens() *ResetTokens {
	return &ResetTokens{
		data: make(map[string]entry),
	}
}

func (s *ResetTokens) Set(token string, userEmail string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[token] = entry{
		email:     userEmail,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *ResetTokens) Consume(token string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[token]
	if !ok {
		return ""
	}
	delete(s.data, token)
	if time.Now().After(e.expiresAt) {
		return ""
	}
	return e.email
}

func (s *ResetTokens) Peek(token string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[token]
	if !ok || time.Now().After(e.expiresAt) {
		return "", false
	}
	return e.email, true
}

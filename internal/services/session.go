package services

import (
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"

	"assetmgr/internal/models"
)

// timeNow is swapped out in tests that exercise expiry.
var timeNow = time.Now

// Session is the record held for an issued bearer token. Role and Email are
// snapshots from issue time; authorization re-reads the user from the
// database, so the snapshot is informational only.
type Session struct {
	UserID    uint        `json:"user_id"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	IssuedAt  time.Time   `json:"issued_at"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// Expired reports whether the session deadline has passed.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// SessionStore owns the bearer-token lifecycle. Implementations must be safe
// for concurrent use; every request resolves a token.
type SessionStore interface {
	Issue(user *models.User) (string, error)
	Resolve(token string) (*Session, bool)
	Revoke(token string)
}

// MemorySessionStore keeps sessions in process memory. Sessions do not
// survive a restart.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

// Issue generates an opaque token and stores a session for the user.
func (s *MemorySessionStore) Issue(user *models.User) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}

	now := timeNow().UTC()
	s.mu.Lock()
	s.sessions[token] = &Session{
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.ttl),
	}
	s.mu.Unlock()

	return token, nil
}

// Resolve looks up a session by exact token match.
func (s *MemorySessionStore) Resolve(token string) (*Session, bool) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}

	// Copy so callers never share the stored record.
	copied := *session
	return &copied, true
}

// Revoke removes the session. No-op if the token is absent.
func (s *MemorySessionStore) Revoke(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// generateToken returns 32 bytes of cryptographic randomness, URL-safe
// encoded. Tokens must be unguessable.
func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

package auth

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidSession = errors.New("invalid session token")
	ErrSessionExpired = errors.New("session expired")
)

// Session is the server-side record behind a logged-in cookie. The record
// is authoritative: a cookie whose record was revoked or expired is
// rejected even if its signature still verifies.
type Session struct {
	ID        string
	UserID    int
	ExpiresAt time.Time
}

type sessionClaims struct {
	SessionID string `json:"sid"`
	UserID    int    `json:"uid"`
	jwt.RegisteredClaims
}

// SessionManager keeps the in-memory session records and signs the cookie
// tokens that reference them.
type SessionManager struct {
	mu       sync.RWMutex
	secret   []byte
	ttl      time.Duration
	sessions map[string]Session
}

func NewSessionManager(secret string, ttl time.Duration) *SessionManager {
	return &SessionManager{
		secret:   []byte(secret),
		ttl:      ttl,
		sessions: make(map[string]Session),
	}
}

// Issue creates a session record for userID and returns the signed token
// to be set as the cookie value.
func (m *SessionManager) Issue(userID int) (string, error) {
	now := time.Now()
	sess := Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		ExpiresAt: now.Add(m.ttl),
	}

	claims := sessionClaims{
		SessionID: sess.ID,
		UserID:    userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	m.sessions[sess.ID] = sess
	m.mu.Unlock()

	return token, nil
}

// Resolve verifies token and returns the live session record behind it.
func (m *SessionManager) Resolve(token string) (*Session, error) {
	claims, err := m.parse(token)
	if err != nil {
		return nil, ErrInvalidSession
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[claims.SessionID]
	if !ok {
		return nil, ErrInvalidSession
	}
	if time.Now().After(sess.ExpiresAt) {
		delete(m.sessions, sess.ID)
		return nil, ErrSessionExpired
	}

	return &sess, nil
}

// Revoke deletes the record behind token. Unknown or garbage tokens are
// ignored so logout is always safe to call.
func (m *SessionManager) Revoke(token string) {
	claims, err := m.parse(token)
	if err != nil {
		return
	}

	m.mu.Lock()
	delete(m.sessions, claims.SessionID)
	m.mu.Unlock()
}

func (m *SessionManager) parse(token string) (*sessionClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid || claims.SessionID == "" {
		return nil, ErrInvalidSession
	}
	return claims, nil
}

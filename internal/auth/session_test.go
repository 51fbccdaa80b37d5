package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionManager_IssueAndResolve(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour)

	token, err := m.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sess, err := m.Resolve(token)
	require.NoError(t, err)
	assert.Equal(t, 42, sess.UserID)
}

func TestSessionManager_Revoke(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour)

	token, err := m.Issue(7)
	require.NoError(t, err)

	m.Revoke(token)

	_, err = m.Resolve(token)
	assert.ErrorIs(t, err, ErrInvalidSession)

	// Revoking again, or revoking garbage, is a no-op.
	m.Revoke(token)
	m.Revoke("not a token")
}

func TestSessionManager_Expiry(t *testing.T) {
	m := NewSessionManager("test-secret", -time.Minute)

	token, err := m.Issue(7)
	require.NoError(t, err)

	_, err = m.Resolve(token)
	assert.Error(t, err)

	// The records map must not hold expired entries after resolution.
	_, err = m.Resolve(token)
	assert.Error(t, err)
}

func TestSessionManager_RejectsForeignTokens(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour)
	other := NewSessionManager("other-secret", time.Hour)

	token, err := other.Issue(1)
	require.NoError(t, err)

	_, err = m.Resolve(token)
	assert.ErrorIs(t, err, ErrInvalidSession)

	_, err = m.Resolve("garbage")
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestSessionManager_RecordIsAuthoritative(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour)

	token, err := m.Issue(1)
	require.NoError(t, err)

	// A fresh manager with the same secret verifies the signature but
	// has no record, so the token is rejected.
	fresh := NewSessionManager("test-secret", time.Hour)
	_, err = fresh.Resolve(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

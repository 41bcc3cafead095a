package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndValidateToken(t *testing.T) {
	svc := NewService("test-secret", "admin-key", time.Hour)

	token, expiresAt, err := svc.IssueToken("admin-key")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	assert.NoError(t, svc.ValidateToken(token))
	assert.NoError(t, svc.ValidateToken("Bearer "+token))
}

func TestIssueTokenBadAdminKey(t *testing.T) {
	svc := NewService("test-secret", "admin-key", time.Hour)

	_, _, err := svc.IssueToken("wrong-key")
	assert.ErrorIs(t, err, ErrBadAdminKey)
}

func TestIssueTokenDisabledWhenKeyUnset(t *testing.T) {
	// An empty configured key disables token issuance entirely rather than
	// letting an empty request key match.
	svc := NewService("test-secret", "", time.Hour)

	_, _, err := svc.IssueToken("")
	assert.ErrorIs(t, err, ErrBadAdminKey)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := NewService("test-secret", "admin-key", time.Hour)
	assert.ErrorIs(t, svc.ValidateToken("not-a-token"), ErrInvalidToken)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewService("secret-a", "admin-key", time.Hour)
	verifier := NewService("secret-b", "admin-key", time.Hour)

	token, _, err := issuer.IssueToken("admin-key")
	require.NoError(t, err)

	assert.ErrorIs(t, verifier.ValidateToken(token), ErrInvalidToken)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := NewService("test-secret", "admin-key", -time.Minute)

	token, _, err := svc.IssueToken("admin-key")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.ValidateToken(token), ErrExpiredToken)
}

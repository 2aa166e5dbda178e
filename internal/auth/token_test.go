package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/apperror"
)

func TestTokenRoundtrip(t *testing.T) {
	svc := NewTokenService("test-secret", 15)
	userID := uuid.New()

	token, err := svc.Issue(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestTokenExpired(t *testing.T) {
	svc := NewTokenService("test-secret", 15)

	token, err := svc.IssueWithTTL(uuid.New(), -time.Minute)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, apperror.ErrExpiredToken)
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", 15)
	verifier := NewTokenService("secret-b", 15)

	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)
}

func TestTokenGarbage(t *testing.T) {
	svc := NewTokenService("test-secret", 15)

	for _, tok := range []string{"", "not-a-token", "aaa.bbb.ccc"} {
		_, err := svc.Verify(tok)
		assert.ErrorIs(t, err, apperror.ErrInvalidToken, "token %q", tok)
	}
}

func TestTokenTTLDefault(t *testing.T) {
	svc := NewTokenService("test-secret", 0)
	assert.Equal(t, 15*time.Minute, svc.ttl)
}

package infrastructure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"taskboard/internal/domain/apperrors"
)

func TestJWTService_GenerateAndParse(t *testing.T) {
	t.Parallel()

	svc := NewJWTService("super-secret", time.Hour)

	token, err := svc.GenerateToken("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestJWTService_Expired(t *testing.T) {
	t.Parallel()

	svc := NewJWTService("super-secret", -time.Minute)

	token, err := svc.GenerateToken("user-123")
	require.NoError(t, err)

	_, err = svc.ParseToken(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestJWTService_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := NewJWTService("right-secret", time.Hour).GenerateToken("user-123")
	require.NoError(t, err)

	_, err = NewJWTService("wrong-secret", time.Hour).ParseToken(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestJWTService_TamperedToken(t *testing.T) {
	t.Parallel()

	svc := NewJWTService("super-secret", time.Hour)

	token, err := svc.GenerateToken("user-123")
	require.NoError(t, err)

	// Flip a character in the payload segment
	tampered := []byte(token)
	mid := len(tampered) / 2
	if tampered[mid] == 'a' {
		tampered[mid] = 'b'
	} else {
		tampered[mid] = 'a'
	}

	_, err = svc.ParseToken(string(tampered))
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestJWTService_Garbage(t *testing.T) {
	t.Parallel()

	svc := NewJWTService("super-secret", time.Hour)

	_, err := svc.ParseToken("not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"portfolio-api/internal/model"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	t.Parallel()

	issuer, err := NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	token, err := issuer.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", claims.UserID)
	require.NotEmpty(t, claims.TokenID)
}

func TestTokenIssuer_Expired(t *testing.T) {
	t.Parallel()

	issuer, err := NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	// Craft a token whose TTL already elapsed, signed with the same secret.
	past := time.Now().Add(-time.Hour)
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-123",
		"iat": past.Add(-time.Hour).Unix(),
		"exp": past.Unix(),
	})
	signed, err := expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = issuer.Verify(signed)
	require.ErrorIs(t, err, model.ErrTokenExpired)
	require.NotErrorIs(t, err, model.ErrTokenInvalid)
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer, err := NewTokenIssuer("secret-one", time.Hour)
	require.NoError(t, err)
	other, err := NewTokenIssuer("secret-two", time.Hour)
	require.NoError(t, err)

	token, err := issuer.Issue("user-123")
	require.NoError(t, err)

	_, err = other.Verify(token)
	require.ErrorIs(t, err, model.ErrTokenInvalid)
}

func TestTokenIssuer_Malformed(t *testing.T) {
	t.Parallel()

	issuer, err := NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	_, err = issuer.Verify("not.a.token")
	require.ErrorIs(t, err, model.ErrTokenInvalid)

	_, err = issuer.Verify("")
	require.ErrorIs(t, err, model.ErrTokenMissing)
}

func TestTokenIssuer_MissingSubject(t *testing.T) {
	t.Parallel()

	issuer, err := NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	now := time.Now()
	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iat": now.Unix(),
		"exp": now.Add(time.Hour).Unix(),
	})
	signed, err := noSubject.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = issuer.Verify(signed)
	require.ErrorIs(t, err, model.ErrTokenInvalid)
}

func TestNewTokenIssuer_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewTokenIssuer("", time.Hour)
	require.Error(t, err)

	_, err = NewTokenIssuer("secret", 0)
	require.Error(t, err)
}

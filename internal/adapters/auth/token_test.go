package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTCodec_IssueAndVerify(t *testing.T) {
	secret := "test-secret"
	issuer, verifier := NewJWTCodec(secret)

	token, err := issuer.Issue("ops@federation.org", "ops@federation.org", 24*time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := jwt.ParseWithClaims(token, &jwtClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	claims, ok := parsed.Claims.(*jwtClaims)
	require.True(t, ok)
	assert.Equal(t, "ops@federation.org", claims.Subject)
	assert.Equal(t, "ops@federation.org", claims.Email)

	subject, err := verifier.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "ops@federation.org", subject)
}

func TestJWTCodec_Verify_wrongSecret(t *testing.T) {
	issuer, _ := NewJWTCodec("secret-a")
	_, verifier := NewJWTCodec("secret-b")

	token, err := issuer.Issue("ops@federation.org", "ops@federation.org", time.Hour)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestJWTCodec_Verify_expired(t *testing.T) {
	issuer, verifier := NewJWTCodec("test-secret")

	token, err := issuer.Issue("ops@federation.org", "ops@federation.org", -time.Minute)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

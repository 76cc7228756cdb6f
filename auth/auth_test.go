package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotContains(t, string(hash), "s3cret-pass", "hash must not embed the plaintext")

	assert.True(t, CheckPassword(hash, "s3cret-pass"))
	assert.False(t, CheckPassword(hash, "wrong-pass"))
	assert.False(t, CheckPassword(nil, "s3cret-pass"))
}

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService([]byte("unit-test-secret"), time.Hour)

	raw, err := svc.Issue(42, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := svc.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestExpiredTokenRejected(t *testing.T) {
	// A negative ttl yields a token whose expiry is already in the past but
	// whose signature is perfectly valid.
	svc := NewTokenService([]byte("unit-test-secret"), -time.Minute)

	raw, err := svc.Issue(42, "alice")
	require.NoError(t, err)

	_, err = svc.Parse(raw)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTamperedSignatureRejected(t *testing.T) {
	issuer := NewTokenService([]byte("secret-a"), time.Hour)
	verifier := NewTokenService([]byte("secret-b"), time.Hour)

	raw, err := issuer.Issue(42, "alice")
	require.NoError(t, err)

	_, err = verifier.Parse(raw)
	assert.Error(t, err)
}

func TestMalformedTokenRejected(t *testing.T) {
	svc := NewTokenService([]byte("unit-test-secret"), time.Hour)

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Parse(raw)
		assert.Error(t, err, "token %q should be rejected", raw)
	}
}

package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"videogame-catalog/internal/domain/access"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestTokenRoundTrip(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tokens := NewTokens("secret", time.Hour).WithClock(fixedClock(now))

	raw, expires, err := tokens.Issue(access.Identity{UserID: 42, IsAdmin: true})
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), expires)

	id, err := tokens.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, access.Identity{UserID: 42, IsAdmin: true}, id)
}

func TestTokenRejections(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	tokens := NewTokens("secret", time.Hour).WithClock(fixedClock(now))
	raw, _, err := tokens.Issue(access.Identity{UserID: 7})
	require.NoError(t, err)

	expired := tokens.WithClock(fixedClock(now.Add(2 * time.Hour)))
	_, err = expired.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = NewTokens("other-secret", time.Hour).WithClock(fixedClock(now)).Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = tokens.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 7}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = tokens.Verify(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:           7,
		RegisteredClaims: jwt.RegisteredClaims{Issuer: issuer},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = tokens.Verify(noExpiry)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestHasher(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)
	hash, err := h.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)
	assert.True(t, h.Matches(hash, "secret123"))
	assert.False(t, h.Matches(hash, "secret124"))
	assert.False(t, h.Matches("not-a-hash", "secret123"))
}

func TestIsPasswordStrong(t *testing.T) {
	assert.True(t, IsPasswordStrong("secret123"))
	assert.False(t, IsPasswordStrong("short1"))
	assert.False(t, IsPasswordStrong("onlyletters"))
	assert.False(t, IsPasswordStrong("12345678"))
}

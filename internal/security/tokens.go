// Package security issues and verifies bearer tokens and hashes passwords.
package security

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"videogame-catalog/internal/domain/access"
)

const issuer = "videogame-catalog"

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	UserID  uint `json:"user_id"`
	IsAdmin bool `json:"is_admin"`
	jwt.RegisteredClaims
}

type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock returns a copy of t that reads time from now.
func (t *Tokens) WithClock(now func() time.Time) *Tokens {
	next := *t
	next.now = now
	return &next
}

// Issue signs an HS256 token for id that expires after the configured TTL.
func (t *Tokens) Issue(id access.Identity) (string, time.Time, error) {
	now := t.now()
	expires := now.Add(t.ttl)
	claims := Claims{
		UserID:  id.UserID,
		IsAdmin: id.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatUint(uint64(id.UserID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expires, nil
}

// Verify checks signature, algorithm and expiry. Every failure is ErrInvalidToken.
func (t *Tokens) Verify(raw string) (access.Identity, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil || !token.Valid {
		return access.Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.UserID == 0 {
		return access.Identity{}, fmt.Errorf("%w: missing user_id", ErrInvalidToken)
	}
	return access.Identity{UserID: claims.UserID, IsAdmin: claims.IsAdmin}, nil
}

// Package auth mints and verifies the bearer tokens the service issues on
// registration and login. Tokens are self-contained HS256 JWTs; no session
// state is kept server-side, so expiry is the only form of revocation.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/avelichko/authgate/internal/common"
)

// Claims is the signed claim set embedded in every token.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// UserID parses the subject claim as the store-assigned user id.
func (c *Claims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, common.ErrTokenMalformed
	}
	return id, nil
}

// TokenMinter issues and verifies tokens with a single symmetric secret.
// The time source is injectable so tests can simulate expiry without waiting.
type TokenMinter struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenMinter(secret []byte, ttl time.Duration) *TokenMinter {
	return &TokenMinter{secret: secret, ttl: ttl, now: time.Now}
}

// WithClock replaces the time source used for issuing and validating.
func (m *TokenMinter) WithClock(now func() time.Time) *TokenMinter {
	m.now = now
	return m
}

// Issue signs a claim set for the given identity, valid from now until
// now + ttl.
func (m *TokenMinter) Issue(userID int64, username string) (string, error) {
	now := m.now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			ID:        uuid.NewString(),
		},
		Username: username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature before trusting any claim, then the expiry.
// It returns common.ErrTokenExpired, common.ErrInvalidToken (bad signature),
// or common.ErrTokenMalformed (undecodable); the caller decides how much of
// that distinction reaches the client.
func (m *TokenMinter) Verify(raw string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return m.now() }))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, common.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, common.ErrInvalidToken
		default:
			return nil, common.ErrTokenMalformed
		}
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}
	return claims, nil
}

// Package token issues and verifies the bearer tokens used by the API.
// Tokens are HS256 JWTs whose subject is the user's stable external
// subject id, with email and phone carried as claims so the middleware
// can refresh the user record on every request.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verification failures callers may want to distinguish: an expired token
// means the client should re-authenticate, a wrong signing method usually
// means it sent the wrong kind of token entirely.
var (
	ErrExpired   = errors.New("token expired")
	ErrWrongType = errors.New("unexpected token signing method")
	ErrMalformed = errors.New("malformed or invalid token")
)

type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type Manager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewManager(secret, issuer string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

// Sign issues a token for the given subject id.
func (m *Manager) Sign(subject, email, phone string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		Email: email,
		Phone: phone,
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(m.secret)
}

// Parse verifies raw and returns its claims. Failures map onto the
// package sentinels so the middleware can surface a reason code.
func (m *Manager) Parse(raw string) (*Claims, error) {
	claims := &Claims{}
	// The method check lives in the keyfunc so a mismatch surfaces as
	// ErrWrongType instead of a generic verification failure.
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, ErrWrongType
		}
		return m.secret, nil
	})

	switch {
	case errors.Is(err, ErrWrongType):
		return nil, ErrWrongType
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpired
	case err != nil:
		return nil, ErrMalformed
	case tok == nil || !tok.Valid:
		return nil, ErrMalformed
	}

	if m.issuer != "" && claims.Issuer != m.issuer {
		return nil, ErrMalformed
	}
	if claims.Subject == "" {
		return nil, ErrMalformed
	}
	return claims, nil
}

package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParse(t *testing.T) {
	m := NewManager("test-secret", "hirestack", time.Hour)

	raw, err := m.Sign("subject-1", "owner@acme.test", "+919876543210")
	require.NoError(t, err)

	claims, err := m.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "subject-1", claims.Subject)
	assert.Equal(t, "owner@acme.test", claims.Email)
	assert.Equal(t, "+919876543210", claims.Phone)
}

func TestParseExpired(t *testing.T) {
	m := NewManager("test-secret", "hirestack", -time.Minute)

	raw, err := m.Sign("subject-1", "", "")
	require.NoError(t, err)

	_, err = m.Parse(raw)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestParseMalformed(t *testing.T) {
	m := NewManager("test-secret", "hirestack", time.Hour)

	_, err := m.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestParseWrongSecret(t *testing.T) {
	signer := NewManager("secret-a", "hirestack", time.Hour)
	verifier := NewManager("secret-b", "hirestack", time.Hour)

	raw, err := signer.Sign("subject-1", "", "")
	require.NoError(t, err)

	_, err = verifier.Parse(raw)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestParseWrongSigningMethod(t *testing.T) {
	m := NewManager("test-secret", "hirestack", time.Hour)

	// A token signed with "none" is the classic wrong-token-type case.
	tok := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "subject-1",
		Issuer:    "hirestack",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	raw, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.Parse(raw)
	assert.ErrorIs(t, err, ErrWrongType)
}

func TestParseWrongIssuer(t *testing.T) {
	signer := NewManager("test-secret", "someone-else", time.Hour)
	verifier := NewManager("test-secret", "hirestack", time.Hour)

	raw, err := signer.Sign("subject-1", "", "")
	require.NoError(t, err)

	_, err = verifier.Parse(raw)
	assert.ErrorIs(t, err, ErrMalformed)
}

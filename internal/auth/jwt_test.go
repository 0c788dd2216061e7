// File: internal/auth/jwt_test.go
package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_SessionToken_RoundTrip(t *testing.T) {
	req := require.New(t)
	secret := []byte("test-secret")

	token, err := GenerateSessionToken(SessionClaims{Email: "a@x.com", Name: "Alice"}, secret, time.Hour)
	req.NoError(err)

	claims, err := ValidateSessionToken(token, secret)
	req.NoError(err)
	req.Equal("a@x.com", claims.Email)
	req.Equal("Alice", claims.Name)
}

func Test_SessionToken_RejectsWrongSecret(t *testing.T) {
	req := require.New(t)

	token, err := GenerateSessionToken(SessionClaims{Email: "a@x.com"}, []byte("secret-one"), time.Hour)
	req.NoError(err)

	_, err = ValidateSessionToken(token, []byte("secret-two"))
	req.Error(err)
}

func Test_SessionToken_RejectsExpired(t *testing.T) {
	req := require.New(t)
	secret := []byte("test-secret")

	token, err := GenerateSessionToken(SessionClaims{Email: "a@x.com"}, secret, -time.Minute)
	req.NoError(err)

	_, err = ValidateSessionToken(token, secret)
	req.Error(err)
}

func Test_SessionToken_RequiresEmail(t *testing.T) {
	_, err := GenerateSessionToken(SessionClaims{}, []byte("test-secret"), time.Hour)
	require.Error(t, err)
}

// File: internal/auth/jwt.go
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the identity carried by the session cookie.
type SessionClaims struct {
	Email string
	Name  string
}

// GenerateSessionToken signs a session JWT for the given identity.
func GenerateSessionToken(identity SessionClaims, secretKey []byte, ttl time.Duration) (string, error) {
	if identity.Email == "" {
		return "", errors.New("email cannot be empty")
	}

	claims := jwt.MapClaims{
		"sub":  identity.Email,
		"name": identity.Name,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateSessionToken checks the signature and expiry and returns the
// embedded identity.
func ValidateSessionToken(tokenString string, secretKey []byte) (SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey, nil
	})
	if err != nil {
		return SessionClaims{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return SessionClaims{}, errors.New("invalid token")
	}

	email, ok := claims["sub"].(string)
	if !ok || email == "" {
		return SessionClaims{}, errors.New("invalid token")
	}
	name, _ := claims["name"].(string)

	return SessionClaims{Email: email, Name: name}, nil
}

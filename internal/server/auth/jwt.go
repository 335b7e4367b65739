// Package auth issues and verifies the HS256 session tokens handed to
// callers after registration, login and refresh.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims is the identity carried by a session token.
type TokenClaims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// Claims is the full JWT payload: identity plus iat, exp and a random jti,
// so two tokens for the same identity never compare equal.
type Claims struct {
	TokenClaims
	jwt.RegisteredClaims
}

func GenerateToken(claims TokenClaims, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		TokenClaims: claims,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
			ID:        uuid.NewString(),
		},
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies signature and expiry and returns the identity claims.
// Expired tokens yield common.ErrTokenExpired; every other failure yields
// common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (TokenClaims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return TokenClaims{}, common.ErrTokenExpired
		}
		return TokenClaims{}, common.ErrInvalidToken
	}

	if !token.Valid {
		return TokenClaims{}, common.ErrInvalidToken
	}

	return claims.TokenClaims, nil
}

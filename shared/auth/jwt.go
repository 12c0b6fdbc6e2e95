package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// JWTAuthenticator issues and verifies HS256 bearer tokens whose subject is
// the username the token was issued for.
type JWTAuthenticator struct {
	secret   []byte
	issuer   string
	tokenTTL time.Duration
}

// NewJWTAuthenticator creates a new JWTAuthenticator instance. The secret is
// shared process-wide configuration and must never be logged.
func NewJWTAuthenticator(secret []byte, issuer string, tokenTTL time.Duration) *JWTAuthenticator {
	return &JWTAuthenticator{
		secret:   secret,
		issuer:   issuer,
		tokenTTL: tokenTTL,
	}
}

// IssueToken generates a signed token for the given username. The token
// carries issued-at, not-before and expiry claims; nothing is persisted.
func (a *JWTAuthenticator) IssueToken(username string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		Issuer:    a.issuer,
		Audience:  jwt.ClaimStrings{a.issuer},
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.tokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(a.secret)
}

// VerifyToken validates the signature, issuer, audience and expiry of a
// token and returns the username it was issued for.
func (a *JWTAuthenticator) VerifyToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return a.secret, nil
	},
		jwt.WithExpirationRequired(),
		jwt.WithAudience(a.issuer),
		jwt.WithIssuer(a.issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	)
	if err != nil {
		return "", err
	}

	if !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}

package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var jwtSigningMethod = jwt.SigningMethodHS256

// ErrNoExpiry is returned when a token carries no exp claim.
var ErrNoExpiry = errors.New("token has no expiry")

// MintParams describes a token to sign. Used by the local stub backend and tests;
// real tokens are issued by the GreenLoop API.
type MintParams struct {
	Secret  string
	Issuer  string
	Subject string
	Kind    TokenKind
	TTL     time.Duration
}

// MintToken issues a signed HS256 JWT.
func MintToken(params MintParams, now time.Time) (string, error) {
	if params.Secret == "" {
		return "", fmt.Errorf("jwt secret is required")
	}
	if params.TTL <= 0 {
		return "", fmt.Errorf("jwt ttl must be positive")
	}
	if !params.Kind.IsValid() {
		return "", fmt.Errorf("invalid token kind %q", params.Kind)
	}

	claims := TokenClaims{
		Kind: params.Kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   params.Subject,
			Issuer:    params.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(params.TTL)),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwtSigningMethod, claims).SignedString([]byte(params.Secret))
	if err != nil {
		return "", fmt.Errorf("signing jwt: %w", err)
	}
	return signed, nil
}

// ParseToken validates signature and expiry and returns the claims.
func ParseToken(secret, tokenString string) (*TokenClaims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}

	claims := &TokenClaims{}
	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if token.Method != jwtSigningMethod {
				return nil, fmt.Errorf("unexpected signing method %s", token.Header["alg"])
			}
			return []byte(secret), nil
		},
		jwt.WithValidMethods([]string{jwtSigningMethod.Alg()}),
	)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// ExpiresAt reads the exp claim without verifying the signature. The client
// never holds the signing key, so this is for display and refresh timing only.
func ExpiresAt(tokenString string) (time.Time, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return time.Time{}, fmt.Errorf("token is empty")
	}

	claims := &TokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, fmt.Errorf("parse token: %w", err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, ErrNoExpiry
	}
	return claims.ExpiresAt.Time, nil
}

// ExpiresWithin reports whether the token expires before now+window. Tokens
// that cannot be read are treated as opaque and never reported as expiring.
func ExpiresWithin(tokenString string, now time.Time, window time.Duration) bool {
	exp, err := ExpiresAt(tokenString)
	if err != nil {
		return false
	}
	return !exp.After(now.Add(window))
}

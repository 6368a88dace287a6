package auth

import "github.com/golang-jwt/jwt/v5"

// TokenKind tells access and refresh tokens apart inside the claims.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

func (k TokenKind) IsValid() bool {
	return k == TokenKindAccess || k == TokenKindRefresh
}

// TokenClaims is the payload GreenLoop tokens carry. The subject is the user
// or company id.
type TokenClaims struct {
	Kind TokenKind `json:"type"`
	jwt.RegisteredClaims
}

package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestMintAndParseToken(t *testing.T) {
	now := time.Now().UTC()
	token, err := MintToken(MintParams{
		Secret:  "secret",
		Issuer:  "greenloop",
		Subject: "user-1",
		Kind:    TokenKindAccess,
		TTL:     30 * time.Minute,
	}, now)
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	claims, err := ParseToken("secret", token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.Subject != "user-1" || claims.Kind != TokenKindAccess || claims.Issuer != "greenloop" {
		t.Fatalf("unexpected claims %+v", claims)
	}
	if claims.ID == "" {
		t.Fatalf("expected jti to be set")
	}

	if _, err := ParseToken("other", token); err == nil {
		t.Fatalf("expected signature mismatch to fail")
	}
}

func TestMintTokenRejectsBadParams(t *testing.T) {
	now := time.Now()
	cases := []MintParams{
		{Kind: TokenKindAccess, TTL: time.Minute},
		{Secret: "s", Kind: TokenKindAccess},
		{Secret: "s", Kind: "id", TTL: time.Minute},
	}
	for _, params := range cases {
		if _, err := MintToken(params, now); err == nil {
			t.Fatalf("expected error for %+v", params)
		}
	}
}

func TestExpiresAtReadsWithoutSecret(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	token, err := MintToken(MintParams{Secret: "server-only", Subject: "u", Kind: TokenKindRefresh, TTL: time.Hour}, now)
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	exp, err := ExpiresAt(token)
	if err != nil {
		t.Fatalf("expires at: %v", err)
	}
	if !exp.Equal(now.Add(time.Hour)) {
		t.Fatalf("expected %s got %s", now.Add(time.Hour), exp)
	}

	if !ExpiresWithin(token, now, 2*time.Hour) {
		t.Fatalf("token should expire within two hours")
	}
	if ExpiresWithin(token, now, time.Minute) {
		t.Fatalf("token should not expire within a minute")
	}
}

func TestExpiresAtOpaqueTokens(t *testing.T) {
	if _, err := ExpiresAt("not-a-jwt"); err == nil {
		t.Fatalf("expected parse error for opaque token")
	}
	if ExpiresWithin("not-a-jwt", time.Now(), time.Hour) {
		t.Fatalf("opaque tokens are never reported as expiring")
	}

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u"}).SignedString([]byte("k"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ExpiresAt(noExp); !errors.Is(err, ErrNoExpiry) {
		t.Fatalf("expected ErrNoExpiry, got %v", err)
	}
}

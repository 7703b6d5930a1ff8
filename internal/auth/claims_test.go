package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(exp),
	})

	got, ok := TokenExpiry(token)
	if !ok {
		t.Fatal("expected expiry to be readable")
	}
	if !got.Equal(exp) {
		t.Errorf("expiry = %v, want %v", got, exp)
	}
}

func TestTokenExpiryMissingClaim(t *testing.T) {
	token := signedToken(t, jwt.RegisteredClaims{Subject: "user-1"})

	if _, ok := TokenExpiry(token); ok {
		t.Error("token without exp must report ok=false")
	}
}

func TestTokenExpiryMalformed(t *testing.T) {
	if _, ok := TokenExpiry("not-a-jwt"); ok {
		t.Error("malformed token must report ok=false")
	}
}

func TestTokenSubject(t *testing.T) {
	token := signedToken(t, jwt.RegisteredClaims{Subject: "user-42"})

	if got := TokenSubject(token); got != "user-42" {
		t.Errorf("subject = %q, want user-42", got)
	}
	if got := TokenSubject("garbage"); got != "" {
		t.Errorf("malformed token subject = %q, want empty", got)
	}
}

package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token verification is the backend's job; the client only inspects claims to
// show session state and to know when a refresh is coming. ParseUnverified is
// deliberate here.

// TokenExpiry returns the exp claim of an access token. ok is false when the
// token is malformed or carries no expiry.
func TokenExpiry(token string) (time.Time, bool) {
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// TokenSubject returns the sub claim (the user id) of an access token, or ""
// when the token is malformed.
func TokenSubject(token string) string {
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return ""
	}
	return claims.Subject
}

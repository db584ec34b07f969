package session

import (
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

type tokenClaims struct {
	Subject   string
	ExpiresAt time.Time
}

// peekClaims reads sub and exp from a JWT access token without verifying it.
// The client has no verification key; the server remains the authority.
// Opaque tokens report ok=false.
func peekClaims(rawToken string) (tokenClaims, bool) {
	token, _, err := jwtlib.NewParser().ParseUnverified(rawToken, jwtlib.MapClaims{})
	if err != nil {
		return tokenClaims{}, false
	}
	claims, ok := token.Claims.(jwtlib.MapClaims)
	if !ok {
		return tokenClaims{}, false
	}

	var tc tokenClaims
	if sub, err := claims.GetSubject(); err == nil {
		tc.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		tc.ExpiresAt = exp.Time
	}
	return tc, true
}

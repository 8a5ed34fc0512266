package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoExpiry is returned by TokenExpiresAt for tokens without an exp claim.
var ErrNoExpiry = errors.New("token has no expiry")

// ParseBearerToken extracts the token from an "Authorization: Bearer <t>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// TokenExpiresAt reads the exp claim of a JWT without verifying its
// signature. The client cannot verify server tokens; it only needs to know
// when to stop sending one.
func TokenExpiresAt(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("parse token: %w", err)
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("read exp claim: %w", err)
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiry
	}

	return exp.Time, nil
}

// TokenExpired reports whether tokenString is expired at now, allowing for
// leeway of clock skew. Opaque (non-JWT) tokens and tokens without an exp
// claim are never considered expired.
func TokenExpired(tokenString string, now time.Time, leeway time.Duration) bool {
	exp, err := TokenExpiresAt(tokenString)
	if err != nil {
		return false
	}

	return !now.Add(-leeway).Before(exp)
}

// Package token issues and verifies the stateless bearer tokens used for
// authentication. Tokens are HS256 JWTs carrying the user id and email plus an
// absolute expiry; there is no server-side session store, so rotating the
// signing secret invalidates every outstanding token.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature, wrong
// algorithm, malformed payload or expired token.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the identity embedded in a bearer token.
type Claims struct {
	UserID int64
	Email  string
}

// Issue signs a token for the given claims, valid for ttl from now.
func Issue(secret string, claims Claims, ttl time.Duration) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    claims.UserID,
		"email": claims.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	})
	return t.SignedString([]byte(secret))
}

// Verify parses and validates a signed token, returning the embedded claims.
// Expiry is enforced by the jwt library against the current time.
func Verify(secret, raw string) (*Claims, error) {
	mc := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(raw, mc, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	email, _ := mc["email"].(string)
	// JSON numbers decode as float64.
	id, _ := mc["id"].(float64)
	if email == "" {
		return nil, ErrInvalidToken
	}

	return &Claims{UserID: int64(id), Email: email}, nil
}

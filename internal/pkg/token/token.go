// Package token issues and verifies the signed bearer tokens that carry a
// session across requests. Tokens are HS256 JWTs with a bounded lifetime;
// the server keeps no session state, so validity is determined solely by
// signature and expiry at verification time.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrNoSecret is returned when the signing secret is absent. Both Issue
	// and Verify refuse to operate without one.
	ErrNoSecret = errors.New("token: signing secret is empty")

	ErrMalformed        = errors.New("token: malformed")
	ErrInvalidSignature = errors.New("token: invalid signature")
	ErrExpired          = errors.New("token: expired")
)

// Claims is the identity carried inside a verified token.
type Claims struct {
	UserID    int64
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Issue signs a token for the given identity, valid for ttl from now.
func Issue(userID int64, email string, secret []byte, ttl time.Duration) (string, error) {
	if len(secret) == 0 {
		return "", ErrNoSecret
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret)
}

// Verify parses and validates raw. It fails closed: any parse error,
// signature mismatch, missing expiry, or passed deadline rejects the token.
// The three sentinel errors let callers distinguish why, though the session
// guard deliberately collapses them for clients.
func Verify(raw string, secret []byte) (*Claims, error) {
	if len(secret) == 0 {
		return nil, ErrNoSecret
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return secret, nil
	}, jwt.WithExpirationRequired())
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return nil, ErrInvalidSignature
	default:
		return nil, ErrMalformed
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, ErrMalformed
	}
	email, ok := claims["email"].(string)
	if !ok {
		return nil, ErrMalformed
	}

	out := &Claims{UserID: int64(userID), Email: email}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		out.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}

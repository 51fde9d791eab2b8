// Package auth adapts bearer tokens from the identity provider to a domain.Caller.
package auth

import (
	"alcyxob/fitness-tracker/internal/domain"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token has expired")
)

// claims is the JWT payload. Only the subject is consumed; it is opaque to the app.
type claims struct {
	jwt.RegisteredClaims
}

// Resolver turns a raw bearer token into a caller.
type Resolver interface {
	Resolve(token string) (domain.Caller, error)
}

// TokenResolver validates HS256 tokens signed with a shared secret.
type TokenResolver struct {
	secret []byte
	issuer string
}

// NewTokenResolver creates a resolver. An empty issuer skips the issuer check.
func NewTokenResolver(secret, issuer string) *TokenResolver {
	return &TokenResolver{secret: []byte(secret), issuer: issuer}
}

// Resolve validates the token and returns its subject as the caller.
func (r *TokenResolver) Resolve(token string) (domain.Caller, error) {
	c := &claims{}
	parsed, err := jwt.ParseWithClaims(token, c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return r.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Caller{}, ErrTokenExpired
		}
		return domain.Caller{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid || c.Subject == "" {
		return domain.Caller{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	if r.issuer != "" && !c.VerifyIssuer(r.issuer, true) {
		return domain.Caller{}, fmt.Errorf("%w: unexpected issuer %q", ErrInvalidToken, c.Issuer)
	}
	return domain.Caller{Subject: c.Subject}, nil
}

// IssueToken signs a token for subject. Used by the devtoken command and tests.
func IssueToken(secret, issuer, subject string, ttl time.Duration) (string, error) {
	if secret == "" || subject == "" {
		return "", errors.New("secret and subject are required")
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	now := time.Now()
	c := &claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
}

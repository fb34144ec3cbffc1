// Package auth mints and verifies the signed bearer tokens handed out at sign-in.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MinKeyBytes is the smallest HMAC key accepted for HS512.
const MinKeyBytes = 64

// Verification outcomes. Callers treat all of them as "not authenticated";
// the distinction only matters for logging.
var (
	ErrTokenExpired     = errors.New("token expired")
	ErrTokenMalformed   = errors.New("token malformed")
	ErrTokenSignature   = errors.New("token signature mismatch")
	ErrTokenUnsupported = errors.New("token format unsupported")
	ErrTokenInvalid     = errors.New("token invalid")
)

var (
	errEmptySecret     = errors.New("jwt secret is empty")
	errInvalidLifetime = errors.New("jwt lifetime must be positive")
	errEmptySubject    = errors.New("token subject is empty")
)

var signingMethod = jwt.SigningMethodHS512

// TokenCodec issues and verifies HS512 tokens carrying a single subject claim.
type TokenCodec struct {
	key      []byte
	lifetime time.Duration
	now      func() time.Time
}

// NewTokenCodec derives the signing key from secret. Secrets shorter than
// MinKeyBytes are stretched by repeating their bytes.
func NewTokenCodec(secret string, lifetime time.Duration) (*TokenCodec, error) {
	if secret == "" {
		return nil, errEmptySecret
	}
	if lifetime <= 0 {
		return nil, errInvalidLifetime
	}
	return &TokenCodec{
		key:      expandKey([]byte(secret)),
		lifetime: lifetime,
		now:      time.Now,
	}, nil
}

// WithClock returns a copy of the codec reading time from now.
func (c *TokenCodec) WithClock(now func() time.Time) *TokenCodec {
	cp := *c
	cp.now = now
	return &cp
}

// Lifetime reports how long issued tokens stay valid.
func (c *TokenCodec) Lifetime() time.Duration { return c.lifetime }

// expandKey repeats secret cyclically until it is MinKeyBytes long.
func expandKey(secret []byte) []byte {
	if len(secret) >= MinKeyBytes {
		return append([]byte(nil), secret...)
	}
	key := make([]byte, MinKeyBytes)
	for i := range key {
		key[i] = secret[i%len(secret)]
	}
	return key
}

// Issue signs a token for subject, valid from now until now+lifetime.
func (c *TokenCodec) Issue(subject string) (string, error) {
	if strings.TrimSpace(subject) == "" {
		return "", errEmptySubject
	}
	now := c.now()
	token := jwt.NewWithClaims(signingMethod, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.lifetime)),
	})
	signed, err := token.SignedString(c.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, algorithm and validity window and returns the subject.
// Errors always match one of the ErrToken* outcomes with errors.Is.
func (c *TokenCodec) Verify(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, c.keyFunc,
		jwt.WithTimeFunc(c.now),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", classify(err), err)
	}
	if !token.Valid {
		return "", ErrTokenInvalid
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return "", fmt.Errorf("%w: %w", ErrTokenInvalid, errEmptySubject)
	}
	return claims.Subject, nil
}

func (c *TokenCodec) keyFunc(token *jwt.Token) (interface{}, error) {
	// Only HS512 is accepted; other HMAC variants are rejected too.
	if token.Method == nil || token.Method.Alg() != signingMethod.Alg() {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return c.key, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrTokenSignature
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrTokenUnsupported
	default:
		return ErrTokenInvalid
	}
}

// Reason turns a Verify error into a short label for logs.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTokenExpired):
		return "expired"
	case errors.Is(err, ErrTokenMalformed):
		return "malformed"
	case errors.Is(err, ErrTokenSignature):
		return "signature_mismatch"
	case errors.Is(err, ErrTokenUnsupported):
		return "unsupported"
	default:
		return "invalid"
	}
}

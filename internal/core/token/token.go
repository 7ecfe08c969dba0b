// Package token issues and verifies the signed bearer tokens used for
// sessions and password resets. Tokens are self-contained HS256 JWTs; there
// is no server-side session state and no revocation list for session tokens.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/moviebag/movie-bag/internal/core/domain"
)

// Purpose scopes a token to the endpoint allowed to accept it. A reset
// token presented as a session token (or vice versa) fails verification.
type Purpose string

const (
	PurposeSession       Purpose = "session"
	PurposePasswordReset Purpose = "password_reset"
)

// ResetTTL is the fixed lifetime of password-reset tokens.
const ResetTTL = 24 * time.Hour

// Claims carried by every token the service signs.
type Claims struct {
	Purpose Purpose `json:"purpose"`
	jwt.RegisteredClaims
}

// Service signs and verifies tokens with a process-wide secret loaded once
// at startup.
type Service struct {
	secret     []byte
	sessionTTL time.Duration
}

// NewService returns a token Service. sessionTTL <= 0 falls back to 1 hour.
func NewService(secret string, sessionTTL time.Duration) *Service {
	if sessionTTL <= 0 {
		sessionTTL = time.Hour
	}
	return &Service{secret: []byte(secret), sessionTTL: sessionTTL}
}

// Issue produces a signed token binding the subject, purpose, issue time
// and expiry. ttl <= 0 uses the configured session TTL.
func (s *Service) Issue(subject string, purpose Purpose, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = s.sessionTTL
	}
	now := time.Now().UTC()
	claims := Claims{
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses tokenString and returns its claims when the signature is
// valid, the token is unexpired, and the purpose matches. Failure modes are
// distinct: domain.ErrTokenExpired for an expired token,
// domain.ErrTokenInvalid for anything malformed, tampered, or presented
// with the wrong purpose.
func (s *Service) Verify(tokenString string, purpose Purpose) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !parsed.Valid || claims.Subject == "" || claims.ExpiresAt == nil || claims.Purpose != purpose {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}

// Package password wraps bcrypt hashing and verification for user
// credentials. bcrypt salts internally and compares in constant time; the
// cost factor is tunable so hashing stays expensive as hardware improves.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/moviebag/movie-bag/internal/core/domain"
)

// Hasher hashes and verifies plaintext passwords.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the given bcrypt cost. Costs outside the
// valid bcrypt range fall back to bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash derives a salted one-way hash from plaintext.
func (h *Hasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", domain.ErrValidation
	}
	out, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Verify reports whether plaintext matches hash. A mismatch returns
// domain.ErrInvalidCredentials; any other failure is passed through.
func (h *Hasher) Verify(plaintext, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return domain.ErrInvalidCredentials
		}
		return err
	}
	return nil
}

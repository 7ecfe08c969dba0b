package password

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/moviebag/movie-bag/internal/core/domain"
)

func TestHasher_HashAndVerify(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("mycoolpassword")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "mycoolpassword" {
		t.Fatalf("expected hash to differ from plaintext")
	}

	if err := h.Verify("mycoolpassword", hash); err != nil {
		t.Fatalf("verify failed: %v", err)
	}
}

func TestHasher_Verify_Mismatch(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("mycoolpassword")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	if err := h.Verify("wrongpassword", hash); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestHasher_Hash_Salted(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	first, err := h.Hash("mycoolpassword")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	second, err := h.Hash("mycoolpassword")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if first == second {
		t.Fatalf("expected different salts to produce different hashes")
	}
}

func TestHasher_Hash_Empty(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	if _, err := h.Hash(""); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestNewHasher_CostFallback(t *testing.T) {
	h := NewHasher(99)
	if h.cost != bcrypt.DefaultCost {
		t.Fatalf("expected fallback to default cost, got %d", h.cost)
	}
}

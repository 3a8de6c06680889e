// Package password wraps bcrypt hashing and verification. Each hash carries
// its own salt and cost, so verification needs no external parameters.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/avelichko/authgate/internal/common"
)

// DefaultCost is the bcrypt work factor used for new hashes.
const DefaultCost = 10

// Hasher derives and checks salted one-way password hashes.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the given cost; out-of-range values fall
// back to DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash generates a fresh random salt and derives a hash of plaintext.
// Two calls with the same input produce different outputs.
func (h *Hasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", common.ErrValidation
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(b), nil
}

// Verify reports whether plaintext matches the stored hash. A mismatch is not
// an error. An error is returned only when the stored hash itself cannot be
// decoded, which means the record is corrupt.
func (h *Hasher) Verify(plaintext, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("%w: %v", common.ErrHashFormat, err)
}

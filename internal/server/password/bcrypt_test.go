package password

import (
	"errors"
	"strings"
	"testing"

	"github.com/avelichko/authgate/internal/common"
)

func TestHashAndVerify_Roundtrip(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcryptTestCost)

	hash, err := h.Hash("p@ss1234")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	ok, err := h.Verify("p@ss1234", hash)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if !ok {
		t.Fatal("expected password to verify against its own hash")
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcryptTestCost)

	hash, err := h.Hash("correct horse")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	ok, err := h.Verify("battery staple", hash)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if ok {
		t.Fatal("expected mismatch for a different password")
	}
}

func TestHash_IsSalted(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcryptTestCost)

	h1, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	h2, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if h1 == h2 {
		t.Fatal("two hashes of the same password must differ")
	}

	for _, hash := range []string{h1, h2} {
		ok, err := h.Verify("same-password", hash)
		if err != nil {
			t.Fatalf("Verify error: %v", err)
		}
		if !ok {
			t.Fatal("both hashes must verify against the original password")
		}
	}
}

func TestHash_EmptyPassword(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcryptTestCost)
	if _, err := h.Hash(""); !errors.Is(err, common.ErrValidation) {
		t.Fatalf("want common.ErrValidation, got %v", err)
	}
}

func TestVerify_CorruptStoredHash(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcryptTestCost)
	_, err := h.Verify("whatever", "not-a-bcrypt-hash")
	if !errors.Is(err, common.ErrHashFormat) {
		t.Fatalf("want common.ErrHashFormat, got %v", err)
	}
}

func TestHash_EmbedsCost(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcryptTestCost)
	hash, err := h.Hash("pw")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if !strings.HasPrefix(hash, "$2a$") {
		t.Fatalf("unexpected hash prefix: %q", hash)
	}
}

// bcryptTestCost keeps the test suite fast; production uses DefaultCost.
const bcryptTestCost = 4

package auth

import "testing"

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	// MinCost keeps the test fast.
	h := NewBcryptHasher(4)

	hash, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret1" {
		t.Fatalf("expected hash to differ from plaintext")
	}

	if !h.Compare(hash, "secret1") {
		t.Fatalf("expected match for correct password")
	}
	if h.Compare(hash, "wrong") {
		t.Fatalf("expected mismatch for wrong password")
	}
}

func TestBcryptHasher_PerCallSalt(t *testing.T) {
	h := NewBcryptHasher(4)

	h1, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	h2, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("expected distinct hashes for the same password (random salt)")
	}
}

func TestBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	h := NewBcryptHasher(-1)

	hash, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("hash with fallback cost: %v", err)
	}
	if !h.Compare(hash, "secret1") {
		t.Fatalf("expected match after fallback cost hash")
	}
}

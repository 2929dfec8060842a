package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestNewBcryptHasherCost(t *testing.T) {
	cases := map[int]int{
		0:                      bcrypt.DefaultCost,
		bcrypt.MinCost:         bcrypt.MinCost,
		bcrypt.DefaultCost + 2: bcrypt.DefaultCost + 2,
	}
	for in, want := range cases {
		if got := NewBcryptHasher(in).cost; got != want {
			t.Fatalf("cost %d: expected %d, got %d", in, want, got)
		}
	}
}

func TestBcryptHasherRoundTrip(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)
	first, err := hasher.Hash("shopper-secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	second, err := hasher.Hash("shopper-secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if first == second {
		t.Fatal("expected salted hashes to differ")
	}
	for _, hash := range []string{first, second} {
		if err := hasher.Compare(hash, "shopper-secret"); err != nil {
			t.Fatalf("compare: %v", err)
		}
	}
	if err := hasher.Compare(first, "Shopper-secret"); err == nil {
		t.Fatal("expected mismatch for a different password")
	}
	if err := hasher.Compare("hash:shopper-secret", "shopper-secret"); err == nil {
		t.Fatal("expected error for a value that is not a bcrypt hash")
	}
}

func TestBcryptHasherRejectsInvalidCost(t *testing.T) {
	hasher := &BcryptHasher{cost: bcrypt.MaxCost + 1}
	if _, err := hasher.Hash("password"); err == nil {
		t.Fatal("expected hash error for invalid cost")
	}
}

package security_test

import (
	"strings"
	"testing"

	"github.com/vroommkart/storefront/pkg/security"
)

func TestHashAndVerifySecret(t *testing.T) {
	hash, err := security.HashSecret("2025", security.DefaultParams())
	if err != nil {
		t.Fatalf("HashSecret returned error: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$v=19$") {
		t.Fatalf("unexpected hash format %q", hash)
	}

	ok, err := security.VerifySecret("2025", hash)
	if err != nil {
		t.Fatalf("VerifySecret returned error for valid hash: %v", err)
	}
	if !ok {
		t.Fatal("VerifySecret failed for the correct secret")
	}

	ok, err = security.VerifySecret("2024", hash)
	if err != nil {
		t.Fatalf("VerifySecret returned error for wrong secret: %v", err)
	}
	if ok {
		t.Fatal("VerifySecret returned true for incorrect secret")
	}
}

func TestHashSecretSaltsEachHash(t *testing.T) {
	first, err := security.HashSecret("2025", security.DefaultParams())
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	second, err := security.HashSecret("2025", security.DefaultParams())
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if first == second {
		t.Fatal("expected distinct salts")
	}
}

func TestHashSecretRejectsEmpty(t *testing.T) {
	if _, err := security.HashSecret("", security.DefaultParams()); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestHashSecretClampsParams(t *testing.T) {
	hash, err := security.HashSecret("2025", security.ArgonParams{})
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !strings.Contains(hash, "m=8,t=1,p=1") {
		t.Fatalf("expected clamped params in %q", hash)
	}
}

func TestVerifySecretBadHash(t *testing.T) {
	for _, encoded := range []string{"not-a-hash", "$argon2id$v=19$m=8,t=0,p=1$c2FsdA$aGFzaA", "$argon2id$v=19$m=8$%%$%%"} {
		if _, err := security.VerifySecret("irrelevant", encoded); err == nil {
			t.Fatalf("expected error for malformed hash %q", encoded)
		}
	}
}

package auth

import (
	"strings"
	"testing"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	stored, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if len(stored) != 128 {
		t.Fatalf("expected 128 hex chars, got %d", len(stored))
	}
	if !VerifyPassword(stored, "correct horse battery staple") {
		t.Fatalf("expected password to verify")
	}
	if VerifyPassword(stored, "correct horse battery stapl") {
		t.Fatalf("wrong password must not verify")
	}
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	a, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	b, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if a == b {
		t.Fatalf("two hashes of the same password must differ (random salt)")
	}
	if a[:64] == b[:64] {
		t.Fatalf("salts must differ")
	}
	if !VerifyPassword(a, "secret") || !VerifyPassword(b, "secret") {
		t.Fatalf("both stored forms must verify")
	}
}

func TestVerifyPasswordMalformedStoredForm(t *testing.T) {
	cases := []string{
		"",
		"deadbeef",
		strings.Repeat("z", 128),
		strings.Repeat("ab", 63),
	}
	for _, stored := range cases {
		if VerifyPassword(stored, "anything") {
			t.Fatalf("malformed stored form %q must not verify", stored)
		}
	}
}

func TestHashPasswordEmpty(t *testing.T) {
	if _, err := HashPassword(""); err == nil {
		t.Fatalf("expected error for empty password")
	}
}

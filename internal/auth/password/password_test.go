package password

import (
	"strings"
	"testing"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(hash, "correct horse") {
		t.Fatal("hash must not contain the plaintext")
	}

	if err := Compare(hash, "correct horse battery staple"); err != nil {
		t.Fatalf("expected matching password to compare clean: %v", err)
	}

	if err := Compare(hash, "wrong password"); err == nil {
		t.Fatal("expected mismatch error for wrong password")
	}
}

func TestHashIsSalted(t *testing.T) {
	first, err := Hash("hunter2hunter2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Hash("hunter2hunter2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first == second {
		t.Fatal("two hashes of the same password should differ")
	}
}

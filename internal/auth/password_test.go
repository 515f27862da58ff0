package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	digest, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if digest == "password123" {
		t.Fatal("digest must not equal the plaintext")
	}
	if !CheckPassword("password123", digest) {
		t.Fatal("correct password should verify")
	}
	if CheckPassword("wrongpassword", digest) {
		t.Fatal("wrong password should not verify")
	}
}

func TestHashIsSalted(t *testing.T) {
	first, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	second, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if first == second {
		t.Fatal("two hashes of the same password should differ")
	}
}

package auth

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if !IsHashed(hash) {
		t.Error("generated hash not recognized as hashed")
	}
	if !VerifyPassword(hash, "s3cret") {
		t.Error("correct password should verify")
	}
	if VerifyPassword(hash, "wrong") {
		t.Error("wrong password should not verify")
	}
}

func TestHashPassword_Empty(t *testing.T) {
	if _, err := HashPassword(""); err == nil {
		t.Error("empty password should be rejected")
	}
}

func TestVerifyPassword_LegacyPlaintextFailsClosed(t *testing.T) {
	// A legacy row holds the raw password. It must never verify, even when
	// the candidate matches literally; migration is the only path.
	if VerifyPassword("letmein", "letmein") {
		t.Error("plaintext stored credential must fail closed")
	}
}

func TestIsHashed(t *testing.T) {
	if IsHashed("plaintext") {
		t.Error("plaintext flagged as hashed")
	}
	if !IsHashed("$2b$10$abcdefghijklmnopqrstuv") {
		t.Error("bcrypt $2b$ prefix not recognized")
	}
	if !IsHashed("$2a$10$abcdefghijklmnopqrstuv") {
		t.Error("bcrypt $2a$ prefix not recognized")
	}
}

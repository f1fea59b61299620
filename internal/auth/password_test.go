package auth

import (
	"testing"
)

func TestHashPasswordProducesVerifiableDigest(t *testing.T) {
	digest, err := HashPassword("foobar")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if digest == "foobar" {
		t.Fatal("digest must not equal the raw password")
	}
	if !VerifyPassword(digest, "foobar") {
		t.Fatal("correct password should verify")
	}
	if VerifyPassword(digest, "invalid") {
		t.Fatal("wrong password should not verify")
	}
}

func TestHashPasswordNotDeterministic(t *testing.T) {
	a, err := HashPassword("foobar")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	b, err := HashPassword("foobar")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if a == b {
		t.Fatal("bcrypt digests should be salted")
	}
}

func TestVerifyPasswordMalformedDigest(t *testing.T) {
	for _, digest := range []string{"", "not-a-digest", "$2a$garbage"} {
		if VerifyPassword(digest, "foobar") {
			t.Fatalf("digest %q should not verify", digest)
		}
	}
}

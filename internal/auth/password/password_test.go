package password

import (
	"strings"
	"testing"
)

func TestHashAndVerify(t *testing.T) {
	encoded, err := Hash("123456")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if !strings.HasPrefix(encoded, "$argon2id$v=19$") {
		t.Fatalf("unexpected hash encoding: %s", encoded)
	}

	if !Verify("123456", encoded) {
		t.Fatal("expected matching password to verify")
	}
	if Verify("1234567", encoded) {
		t.Fatal("expected mismatched password to fail")
	}
}

func TestVerifyRejectsMalformedEncoding(t *testing.T) {
	for _, encoded := range []string{
		"",
		"plaintext",
		"$argon2i$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=1$c2FsdA$aGFzaA",
	} {
		if Verify("123456", encoded) {
			t.Fatalf("expected %q to fail verification", encoded)
		}
	}
}

func TestHashIsSalted(t *testing.T) {
	a, err := Hash("123456")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	b, err := Hash("123456")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if a == b {
		t.Fatal("expected distinct salts to produce distinct hashes")
	}
}

package password

import (
	"errors"
	"testing"
)

func TestHash_VerifyRoundtrip(t *testing.T) {
	digest, err := Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if digest == "s3cret" {
		t.Fatalf("digest must not equal plaintext")
	}
	if !Verify("s3cret", digest) {
		t.Fatalf("Verify(p, Hash(p)) must be true")
	}
	if Verify("wrong", digest) {
		t.Fatalf("Verify must be false for a different password")
	}
}

func TestHash_Empty(t *testing.T) {
	if _, err := Hash(""); !errors.Is(err, ErrEmptyPassword) {
		t.Fatalf("expected ErrEmptyPassword, got %v", err)
	}
}

func TestHash_NonDeterministic(t *testing.T) {
	first, err := Hash("same-input")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	second, err := Hash("same-input")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if first == second {
		t.Fatalf("two hashes of the same input must differ (per-call salt)")
	}
	if !Verify("same-input", first) || !Verify("same-input", second) {
		t.Fatalf("both digests must verify against the original input")
	}
}

func TestVerify_MalformedDigest(t *testing.T) {
	for _, digest := range []string{"", "not-a-bcrypt-digest", "$2a$broken"} {
		if Verify("anything", digest) {
			t.Fatalf("Verify must be false for malformed digest %q", digest)
		}
	}
}

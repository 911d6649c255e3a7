package application

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestFixedWidthCodec(t *testing.T) {
	t.Parallel()

	t.Run("pads short credentials to the column width", func(t *testing.T) {
		t.Parallel()

		encoded, err := NewFixedWidthCodec().Encode("secret")
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		if len(encoded) != 60 {
			t.Fatalf("expected 60 characters, got %d", len(encoded))
		}
		if encoded != "secret"+strings.Repeat(" ", 54) {
			t.Fatalf("unexpected encoding %q", encoded)
		}
	})

	t.Run("truncates over-width credentials", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("a", 80)
		encoded, err := NewFixedWidthCodec().Encode(long)
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		if encoded != long[:60] {
			t.Fatalf("expected truncation to 60 characters, got %q", encoded)
		}
	})

	t.Run("an exact-width credential passes through unchanged", func(t *testing.T) {
		t.Parallel()

		exact := strings.Repeat("x", 60)
		encoded, err := NewFixedWidthCodec().Encode(exact)
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		if encoded != exact {
			t.Fatalf("expected passthrough, got %q", encoded)
		}
	})
}

func TestBcryptCodec(t *testing.T) {
	t.Parallel()

	t.Run("produces a verifiable hash that fits the legacy column", func(t *testing.T) {
		t.Parallel()

		codec := BcryptCodec{Cost: bcrypt.MinCost}
		encoded, err := codec.Encode("secret")
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		if len(encoded) != 60 {
			t.Fatalf("expected a 60 character hash, got %d", len(encoded))
		}
		if err := bcrypt.CompareHashAndPassword([]byte(encoded), []byte("secret")); err != nil {
			t.Fatalf("expected the hash to verify: %v", err)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(encoded), []byte("wrong")); err == nil {
			t.Fatal("expected a mismatched password to fail verification")
		}
	})
}

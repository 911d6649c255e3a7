package application

import (
	"errors"
	"testing"
)

func TestParseCeilingPrice(t *testing.T) {
	t.Parallel()

	t.Run("accepts both decimal separators", func(t *testing.T) {
		t.Parallel()

		dot, err := ParseCeilingPrice("450.5")
		if err != nil {
			t.Fatalf("ParseCeilingPrice failed: %v", err)
		}
		comma, err := ParseCeilingPrice("450,5")
		if err != nil {
			t.Fatalf("ParseCeilingPrice failed: %v", err)
		}
		if dot.Value() != 450.5 || comma.Value() != 450.5 {
			t.Fatalf("expected 450.5 from both forms, got %v and %v", dot.Value(), comma.Value())
		}
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		price, err := ParseCeilingPrice("  120  ")
		if err != nil {
			t.Fatalf("ParseCeilingPrice failed: %v", err)
		}
		if price.Value() != 120 {
			t.Fatalf("expected 120, got %v", price.Value())
		}
	})

	t.Run("rejects empty, over-width, and non-numeric input", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"", "   ", "12345678901", "abc", "1.2.3"} {
			if _, err := ParseCeilingPrice(raw); !errors.Is(err, ErrInvalidCeilingPrice) {
				t.Fatalf("expected ErrInvalidCeilingPrice for %q, got %v", raw, err)
			}
		}
	})

	t.Run("legacy form is right-padded to the column width", func(t *testing.T) {
		t.Parallel()

		price, err := ParseCeilingPrice("450,5")
		if err != nil {
			t.Fatalf("ParseCeilingPrice failed: %v", err)
		}
		legacy := price.Legacy()
		if len(legacy) != 10 {
			t.Fatalf("expected 10 characters, got %d", len(legacy))
		}
		if legacy != "450.5     " {
			t.Fatalf("expected normalized padded text, got %q", legacy)
		}
	})
}

func TestValidateCeilingPrice(t *testing.T) {
	t.Parallel()

	t.Run("nil passes through untouched", func(t *testing.T) {
		t.Parallel()

		legacy, err := validateCeilingPrice(100, nil)
		if err != nil || legacy != nil {
			t.Fatalf("expected nil, nil, got %v %v", legacy, err)
		}
	})

	t.Run("rejects a ceiling below the floor", func(t *testing.T) {
		t.Parallel()

		_, err := validateCeilingPrice(150, strPtr("100"))
		if !errors.Is(err, ErrInvalidCeilingPrice) {
			t.Fatalf("expected ErrInvalidCeilingPrice, got %v", err)
		}
	})

	t.Run("a ceiling equal to the floor is allowed", func(t *testing.T) {
		t.Parallel()

		legacy, err := validateCeilingPrice(150, strPtr("150"))
		if err != nil {
			t.Fatalf("validateCeilingPrice failed: %v", err)
		}
		if legacy == nil || *legacy != "150       " {
			t.Fatalf("expected padded legacy text, got %v", legacy)
		}
	})
}

package application

import (
	"fmt"
	"strconv"
	"strings"
)

// ceilingPriceWidth is the width of the legacy fixed-format column the
// ceiling price round-trips through.
const ceilingPriceWidth = 10

// CeilingPrice is a validated numeric value backed by the legacy fixed-width
// text column. Parsing gives the engine real numeric semantics; Legacy
// renders the value back to the stored form so the external contract is
// preserved.
type CeilingPrice struct {
	value float64
	text  string
}

// ParseCeilingPrice validates raw as a decimal number, accepting both "." and
// "," as the decimal separator. Unparsable or over-width input fails with
// ErrInvalidCeilingPrice.
func ParseCeilingPrice(raw string) (CeilingPrice, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return CeilingPrice{}, fmt.Errorf("%w: empty value", ErrInvalidCeilingPrice)
	}
	if len(trimmed) > ceilingPriceWidth {
		return CeilingPrice{}, fmt.Errorf("%w: %q exceeds %d characters", ErrInvalidCeilingPrice, trimmed, ceilingPriceWidth)
	}

	normalized := strings.ReplaceAll(trimmed, ",", ".")
	value, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return CeilingPrice{}, fmt.Errorf("%w: %q is not a number", ErrInvalidCeilingPrice, raw)
	}

	return CeilingPrice{value: value, text: normalized}, nil
}

// Value returns the parsed numeric amount.
func (c CeilingPrice) Value() float64 {
	return c.value
}

// Legacy renders the price in the fixed-width stored form: the normalized
// text right-padded with spaces to the column width.
func (c CeilingPrice) Legacy() string {
	if len(c.text) >= ceilingPriceWidth {
		return c.text
	}
	return c.text + strings.Repeat(" ", ceilingPriceWidth-len(c.text))
}

// validateCeilingPrice parses raw and checks it against floor. A ceiling
// below the floor price fails with ErrInvalidCeilingPrice.
func validateCeilingPrice(floor float64, raw *string) (*string, error) {
	if raw == nil {
		return nil, nil
	}

	ceiling, err := ParseCeilingPrice(*raw)
	if err != nil {
		return nil, err
	}
	if ceiling.Value() < floor {
		return nil, fmt.Errorf("%w: ceiling %v below floor %v", ErrInvalidCeilingPrice, ceiling.Value(), floor)
	}

	legacy := ceiling.Legacy()
	return &legacy, nil
}

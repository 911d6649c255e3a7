package application

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// credentialWidth matches the legacy fixed-width credential column.
const credentialWidth = 60

// CredentialCodec converts a raw credential into its stored form. Isolating
// the conversion behind a capability lets a real hashing scheme replace the
// legacy normalization without touching the occupant service.
type CredentialCodec interface {
	Encode(plain string) (string, error)
}

// FixedWidthCodec reproduces the legacy storage convention: truncate to the
// column width, then right-pad with spaces. This is a storage-format
// normalization, not a hash; the stored value remains recoverable.
type FixedWidthCodec struct {
	Width int
}

// NewFixedWidthCodec returns a codec for the legacy 60-character column.
func NewFixedWidthCodec() FixedWidthCodec {
	return FixedWidthCodec{Width: credentialWidth}
}

// Encode truncates then pads plain to the fixed width.
func (c FixedWidthCodec) Encode(plain string) (string, error) {
	width := c.Width
	if width <= 0 {
		width = credentialWidth
	}
	if len(plain) > width {
		plain = plain[:width]
	}
	return plain + strings.Repeat(" ", width-len(plain)), nil
}

// BcryptCodec hashes credentials with bcrypt. A bcrypt hash is exactly 60
// characters, so it occupies the legacy column without schema changes.
type BcryptCodec struct {
	Cost int
}

// NewBcryptCodec returns a codec using the default bcrypt cost.
func NewBcryptCodec() BcryptCodec {
	return BcryptCodec{Cost: bcrypt.DefaultCost}
}

// Encode hashes plain with bcrypt.
func (c BcryptCodec) Encode(plain string) (string, error) {
	cost := c.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

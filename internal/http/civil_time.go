package http

import (
	"fmt"
	"strings"
	"time"
)

// civilLayout is the timezone-naive wire form for reservation timestamps.
const civilLayout = "2006-01-02T15:04:05"

// civilTime is a wall-clock timestamp on the wire. It accepts both naive
// values ("2025-11-01T15:00:00") and offset-carrying RFC 3339 values; the
// engine strips any offset before persistence. It always renders naive.
type civilTime struct {
	time.Time
}

func (c civilTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.Format(civilLayout) + `"`), nil
}

func (c *civilTime) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		return nil
	}

	if t, err := time.Parse(civilLayout, raw); err == nil {
		c.Time = t
		return nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		c.Time = t
		return nil
	}
	return fmt.Errorf("invalid timestamp %q", raw)
}

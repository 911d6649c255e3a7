package testfixtures

import "time"

// ReferenceTime is the civil instant fixture-driven tests start from.
func ReferenceTime() time.Time {
	return time.Date(2025, time.November, 1, 15, 0, 0, 0, time.UTC)
}

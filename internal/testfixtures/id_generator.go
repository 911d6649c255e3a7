package testfixtures

import (
	"fmt"
	"sync"
)

// IDGenerator yields deterministic UUID-shaped identifiers for tests, so
// assertions can name the ids they expect.
type IDGenerator struct {
	mu      sync.Mutex
	counter uint64
}

// NewIDGenerator constructs a generator starting at one.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Next returns the next identifier in the sequence in canonical hyphenated
// UUID form.
func (g *IDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter++
	return fmt.Sprintf("00000000-0000-4000-8000-%012d", g.counter)
}

// NextFunc exposes Next as a function suitable for dependency injection.
func (g *IDGenerator) NextFunc() func() string {
	if g == nil {
		return func() string { return "" }
	}
	return g.Next
}

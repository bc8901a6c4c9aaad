package randomness

import (
	"crypto/rand"
	"fmt"
)

// Oracle yields cryptographically strong random bytes. Implementations
// block until enough bytes are available; they never return short reads.
type Oracle interface {
	// RandomBytes returns exactly n random bytes.
	RandomBytes(n int) ([]byte, error)
}

type systemOracle struct{}

// NewSystemOracle returns an Oracle backed by the operating system CSPRNG.
func NewSystemOracle() Oracle {
	return &systemOracle{}
}

func (o *systemOracle) RandomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("failed to read entropy: %w", err)
	}
	return buf, nil
}

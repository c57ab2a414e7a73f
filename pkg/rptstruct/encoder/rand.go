package encoder

import (
	"math/rand"
	"time"
)

// Rand is the randomness the encoder draws from.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Read(p []byte) (int, error)
}

// NewRand returns a deterministic source for the given seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// DefaultRand returns a time-seeded source. Output is not reproducible.
func DefaultRand() *rand.Rand {
	return NewRand(time.Now().UnixNano())
}

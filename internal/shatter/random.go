package shatter

import (
	"math/rand"
	"time"
)

// Source supplies uniformly distributed values in [0, 1).
type Source interface {
	Float64() float64
}

// NewSource returns a deterministic source for the given seed.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// NewEntropySource returns a source seeded from the wall clock.
func NewEntropySource() Source {
	return NewSource(time.Now().UnixNano())
}

func uniform(src Source, lo, hi float64) float64 {
	return lo + (hi-lo)*src.Float64()
}

package core

import "math/rand/v2"

// BitSource yields uniformly distributed 0/1 values.
type BitSource interface {
	Bit() uint8
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewEntropyRNG creates an RNG seeded from the process-wide entropy source.
func NewEntropyRNG() *RNG {
	return &RNG{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// Bit returns 0 or 1 with equal probability.
func (r *RNG) Bit() uint8 {
	return uint8(r.r.IntN(2))
}

// FillBinary fills the buffer with 0/1 values drawn from src.
func FillBinary(src BitSource, buf []uint8) {
	for i := range buf {
		buf[i] = src.Bit()
	}
}

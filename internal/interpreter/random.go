package interpreter

import "math/rand/v2"

// RandomSource provides uniformly distributed bytes for the random instruction.
type RandomSource interface {
	Byte() uint8
}

// NewRandomSource returns a deterministic random source for the given seed.
func NewRandomSource(seed uint64) RandomSource {
	return &seededRandom{
		rng: rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)),
	}
}

type seededRandom struct {
	rng *rand.Rand
}

// Byte returns the next random byte.
func (r *seededRandom) Byte() uint8 {
	return uint8(r.rng.UintN(256))
}

// globalRandom uses the randomly seeded global generator.
type globalRandom struct{}

// Byte returns the next random byte.
func (globalRandom) Byte() uint8 {
	return uint8(rand.UintN(256))
}

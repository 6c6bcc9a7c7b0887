/*package rand provides seedable uniform random number generators which can be
passed around explicitly. Nothing here maintains global state, so tests can fix
a seed and assert exact output sequences.
*/
package rand

import (
	"log"
	"time"

	grand "math/rand"
)

// GeneratorType selects the backing source of a Generator.
type GeneratorType int

const (
	// Xorshift is a fast xorshift64* source. This is the default.
	Xorshift GeneratorType = iota
	// Golang is a source backed by math/rand.
	Golang
)

const uniform53Scale = 1.0 / (1 << 53)

type source interface {
	Init(seed uint64)
	Next() float64
}

// Generator generates uniform random numbers from an explicitly seeded
// source. Generators are not safe for concurrent use.
type Generator struct {
	backend source
}

// New creates a Generator of the given type seeded with the given seed.
func New(gt GeneratorType, seed uint64) *Generator {
	gen := &Generator{}
	switch gt {
	case Xorshift:
		gen.backend = &xorshiftSource{}
	case Golang:
		gen.backend = &golangSource{}
	default:
		log.Fatalf("Unrecognized GeneratorType %d.", gt)
	}
	gen.backend.Init(seed)
	return gen
}

// NewTimeSeed creates a Generator of the given type seeded with the current
// wall clock time.
func NewTimeSeed(gt GeneratorType) *Generator {
	return New(gt, uint64(time.Now().UnixNano()))
}

// Uniform returns a value distributed uniformly in [0, 1).
func (gen *Generator) Uniform() float64 {
	return gen.backend.Next()
}

// UniformAt returns a value distributed uniformly in [low, high).
func (gen *Generator) UniformAt(low, high float64) float64 {
	return low + (high-low)*gen.backend.Next()
}

// UniformInt returns an integer distributed uniformly in [low, high).
func (gen *Generator) UniformInt(low, high int) int {
	return low + int(gen.backend.Next()*float64(high-low))
}

type xorshiftSource struct {
	state uint64
}

func (xor *xorshiftSource) Init(seed uint64) {
	// The xorshift recurrence maps zero to zero.
	if seed == 0 {
		seed = 1
	}
	xor.state = seed
}

func (xor *xorshiftSource) Next() float64 {
	xor.state ^= xor.state >> 12
	xor.state ^= xor.state << 25
	xor.state ^= xor.state >> 27
	return float64((xor.state*2685821657736338717)>>11) * uniform53Scale
}

type golangSource struct {
	rng *grand.Rand
}

func (gs *golangSource) Init(seed uint64) {
	gs.rng = grand.New(grand.NewSource(int64(seed)))
}

func (gs *golangSource) Next() float64 {
	return gs.rng.Float64()
}

// Package rng wraps math/rand/v2 behind the small interface the clustering
// package's k-means++ initializer needs, so the core never reaches for a
// process-global generator: callers own a Source and pass it by value,
// cloning it when a sub-process needs its own independent stream.
package rng

import "math/rand/v2"

// Source is the minimal RNG surface the core depends on.
type Source interface {
	// UintN returns a uniform value in [0, n).
	UintN(n uint64) uint64
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
}

// PCG is a Source backed by math/rand/v2's PCG generator, seeded
// deterministically from two uint64 seeds.
type PCG struct {
	r *rand.Rand
}

// NewPCG builds a deterministic PCG-backed Source.
func NewPCG(seed1, seed2 uint64) *PCG {
	return &PCG{r: rand.New(rand.NewPCG(seed1, seed2))}
}

func (p *PCG) UintN(n uint64) uint64 { return p.r.Uint64N(n) }
func (p *PCG) Float64() float64      { return p.r.Float64() }

// Clone returns an independent Source seeded from a draw of the receiver, so
// a sub-process (e.g. a nested k-means run) gets its own stream without
// sharing state with the caller's.
func (p *PCG) Clone() *PCG {
	return NewPCG(p.r.Uint64(), p.r.Uint64())
}

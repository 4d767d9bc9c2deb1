// Package rng provides the randomness injected into the puzzle engines.
// Engines never read a global generator: callers pass a Source (seeded for
// replay) or pre-drawn values.
package rng

import "math/rand"

// Source provides random numbers and can be replaced for testing.
type Source interface {
	// Intn returns a random int in [0, n). Returns 0 when n <= 0.
	Intn(n int) int

	// Float64 returns a random float in [0, 1).
	Float64() float64
}

// Seeded is a deterministic Source backed by math/rand.
type Seeded struct {
	r *rand.Rand
}

// NewSeeded creates a Source whose sequence depends only on seed.
func NewSeeded(seed int64) *Seeded {
	return &Seeded{r: rand.New(rand.NewSource(seed))}
}

// Intn returns a random int in [0, n).
func (s *Seeded) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.r.Intn(n)
}

// Float64 returns a random float in [0, 1).
func (s *Seeded) Float64() float64 {
	return s.r.Float64()
}

// Draw holds the two values needed to spawn one 2048 tile.
type Draw struct {
	Cell  float64 // Picks the empty cell: floor(Cell * emptyCount)
	Value float64 // Picks the tile value against the spawn-4 probability
}

// NextDraw takes a spawn draw from src, cell first.
func NextDraw(src Source) Draw {
	return Draw{Cell: src.Float64(), Value: src.Float64()}
}

// Pick maps a [0, 1) draw onto an index in [0, n).
func Pick(f float64, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(f * float64(n))
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// Package dice provides the single random source the simulation draws from.
// A Roller wraps a *rand.Rand so generation, AI and effects can be seeded
// together for deterministic tests and replays.
package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"
)

// ErrNoWeights is returned when a weighted draw has nothing to pick from
var ErrNoWeights = errors.New("no positive weights")

// Roller handles random draws with a configurable random source
type Roller struct {
	rng  *rand.Rand
	seed int64
}

// NewRoller creates a new Roller with the given random source
func NewRoller(rng *rand.Rand) *Roller {
	return &Roller{rng: rng}
}

// NewSeeded creates a Roller from a seed. A zero seed is replaced by a
// high-entropy one.
func NewSeeded(seed int64) (*Roller, error) {
	if seed == 0 {
		s, err := NewSeed()
		if err != nil {
			return nil, err
		}
		seed = s
	}
	return &Roller{rng: rand.New(rand.NewSource(seed)), seed: seed}, nil
}

// NewSeed generates a random seed using crypto/rand
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Seed returns the seed the roller was created with (0 if unknown)
func (r *Roller) Seed() int64 {
	return r.seed
}

// Intn returns a value in [0, n)
func (r *Roller) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.Intn(n)
}

// Range returns a value in [lo, hi), or lo when the range is empty
func (r *Roller) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.rng.Intn(hi-lo)
}

// Between returns a value in [lo, hi] inclusive
func (r *Roller) Between(lo, hi int) int {
	return r.Range(lo, hi+1)
}

// Coin returns true half of the time
func (r *Roller) Coin() bool {
	return r.rng.Intn(2) == 0
}

// Float64 returns a value in [0.0, 1.0)
func (r *Roller) Float64() float64 {
	return r.rng.Float64()
}

// Weighted picks an index with probability proportional to its weight.
// Non-positive weights are never picked.
func (r *Roller) Weighted(weights []int) (int, error) {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return -1, ErrNoWeights
	}

	roll := r.rng.Intn(total)
	current := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		current += w
		if roll < current {
			return i, nil
		}
	}
	return -1, ErrNoWeights
}

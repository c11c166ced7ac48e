// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"go-galactic-traveler/internal/defs"
)

// PRNGService wraps Go's random generator so the whole simulation draws from
// one seeded stream. With a fixed seed, two runs fed the same inputs produce
// bit-identical state.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a service with the given seed. A zero seed falls
// back to the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn returns a random integer in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a random float in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// FloatRange returns a random float in [lo, hi).
func (s *PRNGService) FloatRange(lo, hi float64) float64 {
	return lo + (hi-lo)*s.rng.Float64()
}

// ChooseWeighted performs a weighted random choice from a drop table. It
// sums the weights, draws a number in that range, and finds the entry the
// number lands on. An empty or zero-weight table yields its first entry or
// the empty string.
func (s *PRNGService) ChooseWeighted(entries []defs.DropEntry) string {
	if len(entries) == 0 {
		return ""
	}

	totalWeight := 0
	for _, entry := range entries {
		totalWeight += entry.Weight
	}

	if totalWeight <= 0 {
		return entries[0].Kind
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if upto+entry.Weight > r {
			return entry.Kind
		}
		upto += entry.Weight
	}

	return entries[len(entries)-1].Kind
}

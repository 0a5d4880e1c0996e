package advisor

import (
	"math/rand/v2"
	"sync"
)

// RandSource picks reply and fact variants. Implementations must return a
// value in [0, n).
type RandSource interface {
	IntN(n int) int
}

type systemRand struct{}

func (systemRand) IntN(n int) int { return rand.IntN(n) }

// SystemRand draws from the process-wide generator.
func SystemRand() RandSource { return systemRand{} }

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

// SeededRand returns a reproducible source safe for concurrent use.
func SeededRand(seed uint64) RandSource {
	return &lockedRand{r: rand.New(rand.NewPCG(seed, seed))}
}

// FixedRand always picks index i, clamped to the valid range.
type FixedRand int

func (f FixedRand) IntN(n int) int {
	if int(f) >= n {
		return n - 1
	}
	if f < 0 {
		return 0
	}
	return int(f)
}

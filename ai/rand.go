// Package ai implements the computer opponent: blind visibility,
// difficulty profiles, the move selector, and the pacing model. The
// package is pure selection logic; it never mutates a snapshot and
// never sleeps. All randomness flows through an injected Rand so tests
// and replays can pin the source.
package ai

// Rand is the random source threaded through the selector and timing
// model. *math/rand.Rand satisfies it.
type Rand interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// Intn returns a uniform value in [0, n). Panics if n <= 0.
	Intn(n int) int
}

// Xorshift is a small deterministic Rand for tests, replays, and the
// duelsim harness. A zero seed is remapped because xorshift cannot
// leave state 0.
type Xorshift struct {
	state uint64
}

// NewXorshift returns a seeded Xorshift source.
func NewXorshift(seed uint64) *Xorshift {
	if seed == 0 {
		seed = 1
	}
	return &Xorshift{state: seed}
}

func (x *Xorshift) next() uint64 {
	s := x.state
	s ^= s << 13
	s ^= s >> 7
	s ^= s << 17
	x.state = s
	return s
}

// Float64 returns a uniform value in [0, 1).
func (x *Xorshift) Float64() float64 {
	// 53 high bits → uniform double in [0, 1).
	return float64(x.next()>>11) / (1 << 53)
}

// Intn returns a uniform value in [0, n).
func (x *Xorshift) Intn(n int) int {
	if n <= 0 {
		panic("ai: Intn with non-positive n")
	}
	return int(x.next() % uint64(n))
}

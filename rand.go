package skipset

import (
	"math"
	"math/bits"
	"time"
)

const defaultSeed = uint64(0xdeadbeefcafebabe)

// Source yields uniform 64-bit values. math/rand/v2 sources satisfy it,
// as does the package-owned RNG.
type Source interface {
	Uint64() uint64
}

// RNG is a seedable xorshift64* generator. Deterministic given a seed,
// which is what lets tests assert exact tower heights.
type RNG struct {
	state uint64
}

// NewRNG returns a generator seeded with seed, or with the clock when
// seed is zero.
func NewRNG(seed uint64) *RNG {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if seed == 0 {
		seed = defaultSeed
	}
	return &RNG{state: seed}
}

func (r *RNG) Uint64() uint64 {
	x := r.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	if x == 0 {
		x = defaultSeed
	}
	r.state = x
	return x * 2685821657736338717
}

// Uniform returns a value in [0, n).
func (r *RNG) Uniform(n uint64) uint64 {
	return uniform(r, n)
}

func uniform(src Source, n uint64) uint64 {
	if n == 0 {
		return 0
	}
	return src.Uint64() % n
}

const float64Unit = 1.0 / (1 << 53)

// heightDraw draws a tower height in [1, maxHeight], geometrically
// distributed with promotion probability p: P(height = h) ∝ p^(h-1).
//
// Draw consumption depends on p: the 1/2 fast path spends one draw, the
// integral-branch path (1/p integral, e.g. the default 1/4) spends one
// draw per promotion attempt.
func heightDraw(src Source, maxHeight int, p float64) int {
	if maxHeight <= 1 {
		return 1
	}

	if p == 0.5 {
		h := 1 + bits.TrailingZeros64(src.Uint64())
		if h > maxHeight {
			h = maxHeight
		}
		return h
	}

	h := 1
	if inv := 1.0 / p; inv == math.Trunc(inv) {
		branch := uint64(inv)
		for h < maxHeight && uniform(src, branch) == 0 {
			h++
		}
		return h
	}

	for h < maxHeight && float64(src.Uint64()>>11)*float64Unit < p {
		h++
	}
	return h
}

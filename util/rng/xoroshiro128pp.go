package rng

import "github.com/MersenneTwister-Lab/XSadd/util/gf2"

var (
	xoroshiro128PPJump64 = gf2.FromWords64(0x2bd7a6a6e99c2ddc, 0x0992ccaf6a6fca05)
	xoroshiro128PPJump96 = gf2.FromWords64(0x360fd5f2cf8d5d99, 0x9c6e6877736c46e3)
)

type Xoroshiro128PPState struct {
	State [2]uint64
}

// NewXoroshiro128PP fills the state from a splitmix64 stream started at seed.
func NewXoroshiro128PP(seed uint64) *Xoroshiro128PPState {
	state := Xoroshiro128PPState{}
	for i := range state.State {
		state.State[i] = splitmix64(&seed)
	}

	return &state
}

func (state *Xoroshiro128PPState) Next() uint64 {
	return xoroshiro128PPPermuteState(state.State[:])
}

func (state *Xoroshiro128PPState) Uint64() uint64 {
	return state.Next()
}

func (state *Xoroshiro128PPState) Step() {
	_ = xoroshiro128PPPermuteState(state.State[:])
}

func (state *Xoroshiro128PPState) Add(other *Xoroshiro128PPState) {
	state.State[0] ^= other.State[0]
	state.State[1] ^= other.State[1]
}

// Jump64 is equivalent to 2^64 calls to Next.
func (state *Xoroshiro128PPState) Jump64() {
	ApplyJump(state, xoroshiro128PPJump64)
}

// Jump96 is equivalent to 2^96 calls to Next.
func (state *Xoroshiro128PPState) Jump96() {
	ApplyJump(state, xoroshiro128PPJump96)
}

package rng

import (
	"fmt"

	"github.com/MersenneTwister-Lab/XSadd/util/gf2"
)

var (
	xoshiro256PPJump128 = gf2.FromWords64(
		0x180ec6d33cfd0aba,
		0xd5a61266f0c9392c,
		0xa9582618e03fc9aa,
		0x39abdc4529b1661c,
	)
	xoshiro256PPJump192 = gf2.FromWords64(
		0x76e15d3efefdcbbf,
		0xc5004e441c522fb3,
		0x77710069854ee241,
		0x39109bb02acbe635,
	)
)

type Xoshiro256PPState struct {
	State [4]uint64
}

func NewXoshiro256PP(seed uint64) *Xoshiro256PPState {
	state := Xoshiro256PPState{}
	for i := range state.State {
		state.State[i] = splitmix64(&seed)
	}

	return &state
}

func (state *Xoshiro256PPState) Next() uint64 {
	return xoshiro256PPPermuteState(state.State[:])
}

func (state *Xoshiro256PPState) Uint64() uint64 {
	return state.Next()
}

func (state *Xoshiro256PPState) Step() {
	_ = xoshiro256PPPermuteState(state.State[:])
}

func (state *Xoshiro256PPState) Add(other *Xoshiro256PPState) {
	for i := range state.State {
		state.State[i] ^= other.State[i]
	}
}

// Jump128 is equivalent to 2^128 calls to Next.
func (state *Xoshiro256PPState) Jump128() {
	ApplyJump(state, xoshiro256PPJump128)
}

// Jump192 is equivalent to 2^192 calls to Next.
func (state *Xoshiro256PPState) Jump192() {
	ApplyJump(state, xoshiro256PPJump192)
}

func (state *Xoshiro256PPState) String() string {
	s := ""

	for i := 0; i < 4; i++ {
		s += fmt.Sprintf("%016x", state.State[i])
	}

	return s
}

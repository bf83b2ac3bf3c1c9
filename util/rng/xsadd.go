package rng

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/MersenneTwister-Lab/XSadd/util/gf2"
	"github.com/MersenneTwister-Lab/XSadd/util/uz"
)

// CharacteristicPolynomial is the characteristic polynomial of the XSadd
// transition with shifts (15, 18, 11), in hex. It has degree 128 and is
// primitive, so the period is 2^128-1. Changing the shifts requires
// recomputing this value.
const CharacteristicPolynomial = "100000000008101840085118000000001"

const xsaddSeedRounds = 8

var xsaddCharacteristic = mustParsePoly(CharacteristicPolynomial)

func mustParsePoly(s string) gf2.Poly {
	p, err := gf2.ParsePoly(s)
	if err != nil {
		panic(err)
	}

	return p
}

// XSaddState is the 128-bit state of the XORSHIFT-ADD generator. The zero
// value is the all-zero state, which is a fixed point and only useful as a
// jump accumulator.
type XSaddState struct {
	State [4]uint32
}

func NewXSadd(seed uint32) *XSaddState {
	state := XSaddState{
		State: [4]uint32{seed, 0, 0, 0},
	}

	s := &state.State
	for i := 1; i < xsaddSeedRounds; i++ {
		prev := s[(i-1)&3]
		s[i&3] ^= uint32(i) + 1812433253*(prev^(prev>>30))
	}

	if *s == [4]uint32{} {
		*s = [4]uint32{'X', 'S', 'A', 'D'}
	}

	for i := 0; i < xsaddSeedRounds; i++ {
		state.Step()
	}

	return &state
}

func (state *XSaddState) Step() {
	_ = xsaddPermuteState(state.State[:])
}

func (state *XSaddState) Uint32() uint32 {
	return xsaddPermuteState(state.State[:])
}

// Uint64 concatenates two outputs, the first one in the high half. It lets
// the state serve as a math/rand/v2 Source.
func (state *XSaddState) Uint64() uint64 {
	hi := uint64(state.Uint32())
	return hi<<32 | uint64(state.Uint32())
}

func (state *XSaddState) Add(other *XSaddState) {
	for i := range state.State {
		state.State[i] ^= other.State[i]
	}
}

// Jump advances the state by mul*baseStep steps, where baseStep is a hex
// number. The product is taken mod 2^128; larger jumps must be split.
func (state *XSaddState) Jump(mul uint32, baseStep string) error {
	jump, err := xsaddJump(mul, baseStep)
	if err != nil {
		return err
	}

	ApplyJump(state, jump)

	return nil
}

// JumpByPolynomial applies a jump polynomial produced by XSaddJumpPolynomial.
func (state *XSaddState) JumpByPolynomial(jump string) error {
	return ApplyJumpHex(state, jump)
}

func (state *XSaddState) String() string {
	return fmt.Sprintf("%08x%08x%08x%08x",
		state.State[0],
		state.State[1],
		state.State[2],
		state.State[3])
}

// XSaddJumpPolynomial returns x^(mul*baseStep) mod CharacteristicPolynomial
// in hex. The result can be cached and applied to any number of states.
func XSaddJumpPolynomial(mul uint32, baseStep string) (string, error) {
	jump, err := xsaddJump(mul, baseStep)
	if err != nil {
		return "", err
	}

	return jump.String(), nil
}

func xsaddJump(mul uint32, baseStep string) (gf2.Poly, error) {
	base, err := uz.ParseHex(baseStep)
	if err != nil {
		return gf2.Poly{}, fmt.Errorf("bad base step: %w", err)
	}

	step := uz.FromUint32(mul).Mul(base)
	jump := gf2.X.PowMod(step, xsaddCharacteristic)

	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("calculated jump polynomial",
			"mul", mul,
			"base", base.String(),
			"step", step.String(),
			"jump", jump.String())
	}

	return jump, nil
}

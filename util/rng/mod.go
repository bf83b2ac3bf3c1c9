// Package rng holds GF(2)-linear pseudorandom generators and the jump-ahead
// engine shared by all of them.
//
// A jump is described by a polynomial j(x) = sum j_i x^i. Applying it to a
// generator replaces the state s with sum j_i T^i(s), where T is the one-step
// transition. For j(x) = x^N mod the characteristic polynomial this equals
// stepping the generator N times.
//
// Generators carry no locks. A state must not be stepped or jumped from two
// goroutines at once.
package rng

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/MersenneTwister-Lab/XSadd/util/gf2"
)

// Linear is satisfied by a pointer to a generator state whose transition is
// linear over GF(2). The zero value of T must be the all-zero state.
type Linear[T any] interface {
	*T
	// Step advances the state by one transition.
	Step()
	// Add xors other into the receiver.
	Add(other *T)
}

var logger atomic.Pointer[slog.Logger]

// SetLogger replaces the logger used for jump tracing. Nil restores
// slog.Default().
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

func Logger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}

	return slog.Default()
}

// ApplyJump evaluates jump at the transition operator of source, in place.
//
// The source is stepped exactly gf2.Bits times. Before each step, if the
// matching coefficient is set, the current source state is added into a
// separate accumulator; the accumulator then becomes the new state.
func ApplyJump[T any, P Linear[T]](source P, jump gf2.Poly) {
	var accumulator T

	for i := 0; i < gf2.Bits; i++ {
		if jump.Bit(i) {
			P(&accumulator).Add(source)
		}
		source.Step()
	}

	*source = accumulator
}

// ApplyJumpHex parses a hex jump polynomial and applies it to source. On a
// parse error source is left untouched.
func ApplyJumpHex[T any, P Linear[T]](source P, jump string) error {
	poly, err := gf2.ParsePoly(jump)
	if err != nil {
		return fmt.Errorf("bad jump polynomial: %w", err)
	}

	ApplyJump(source, poly)

	return nil
}

// http://xoshiro.di.unimi.it/splitmix64.c
func splitmix64(x *uint64) uint64 {
	*x += 0x9e3779b97f4a7c15
	z := *x
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

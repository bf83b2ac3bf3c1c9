// Package uz implements a fixed-width 128-bit unsigned integer stored as
// eight little-endian 16-bit limbs.
//
// Arithmetic is modulo 2^128. Mul silently discards every bit above the
// 128th; a jump of more than 2^128-1 steps has to be split into several
// jumps by the caller.
package uz

import (
	"math/bits"

	"github.com/MersenneTwister-Lab/XSadd/util"
)

const (
	Limbs = 8
	Bits  = Limbs * 16
)

type Uint128 [Limbs]uint16

func FromUint32(v uint32) Uint128 {
	return Uint128{uint16(v), uint16(v >> 16)}
}

// ParseHex reads a hex number, most significant digit first. Upper and lower
// case digits are accepted; digits above the 32nd are dropped.
func ParseHex(s string) (Uint128, error) {
	var x Uint128
	if err := util.ParseLimbs(x[:], s); err != nil {
		return Uint128{}, err
	}

	return x, nil
}

// Mul returns x*y mod 2^128.
func (x Uint128) Mul(y Uint128) Uint128 {
	var r Uint128

	for i := 0; i < Limbs; i++ {
		if x[i] == 0 {
			continue
		}

		var carry uint32
		for j := 0; i+j < Limbs; j++ {
			t := uint32(x[i])*uint32(y[j]) + uint32(r[i+j]) + carry
			r[i+j] = uint16(t)
			carry = t >> 16
		}
	}

	return r
}

func (x Uint128) Bit(i int) bool {
	if i < 0 || i >= Bits {
		return false
	}

	return x[i/16]&(1<<(i%16)) != 0
}

func (x Uint128) IsZero() bool {
	return x == Uint128{}
}

// BitLen returns the number of bits needed to represent x; 0 for zero.
func (x Uint128) BitLen() int {
	for i := Limbs - 1; i >= 0; i-- {
		if x[i] != 0 {
			return i*16 + bits.Len16(x[i])
		}
	}

	return 0
}

func (x Uint128) String() string {
	return util.ArrayToString(x[:])
}

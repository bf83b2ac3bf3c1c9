// Package gf2 implements fixed-width polynomials over GF(2) of degree at
// most 255.
//
// Coefficient i lives in bit i%32 of limb i/32. Every operation works on
// values; nothing allocates.
package gf2

import (
	"math/bits"

	"github.com/MersenneTwister-Lab/XSadd/util"
	"github.com/MersenneTwister-Lab/XSadd/util/uz"
)

const (
	Limbs = 8
	Bits  = Limbs * 32
)

type Poly [Limbs]uint32

var (
	One = Poly{1}
	X   = Poly{2}
)

// ParsePoly reads a polynomial from hex, most significant coefficient first.
// Digits above the 64th are dropped.
func ParsePoly(s string) (Poly, error) {
	var p Poly
	if err := util.ParseLimbs(p[:], s); err != nil {
		return Poly{}, err
	}

	return p, nil
}

// FromWords64 builds a polynomial from little-endian 64-bit words, the layout
// used by published xorshift jump tables.
func FromWords64(words ...uint64) Poly {
	var p Poly
	for i, w := range words {
		if 2*i+1 >= Limbs {
			break
		}
		p[2*i] = uint32(w)
		p[2*i+1] = uint32(w >> 32)
	}

	return p
}

func (p Poly) String() string {
	return util.ArrayToString(p[:])
}

func (p Poly) IsZero() bool {
	return p == Poly{}
}

func (p Poly) Bit(i int) bool {
	if i < 0 || i >= Bits {
		return false
	}

	return p[i/32]&(1<<(i%32)) != 0
}

// Degree returns the index of the highest set coefficient, or -1 for zero.
func (p Poly) Degree() int {
	for i := Limbs - 1; i >= 0; i-- {
		if p[i] != 0 {
			return i*32 + bits.Len32(p[i]) - 1
		}
	}

	return -1
}

// Plus returns p+q, the limb-wise xor. Subtraction is the same operation.
func (p Poly) Plus(q Poly) Poly {
	for i := range p {
		p[i] ^= q[i]
	}

	return p
}

func (p Poly) Minus(q Poly) Poly {
	return p.Plus(q)
}

// Lsh returns p*x^n; coefficients pushed past x^255 are lost.
func (p Poly) Lsh(n int) Poly {
	if n <= 0 {
		return p
	}
	if n >= Bits {
		return Poly{}
	}

	var r Poly
	w, b := n/32, uint(n%32)
	for i := Limbs - 1; i >= w; i-- {
		r[i] = p[i-w] << b
		if b != 0 && i-w-1 >= 0 {
			r[i] |= p[i-w-1] >> (32 - b)
		}
	}

	return r
}

// Rsh returns p/x^n, dropping the low n coefficients.
func (p Poly) Rsh(n int) Poly {
	if n <= 0 {
		return p
	}
	if n >= Bits {
		return Poly{}
	}

	var r Poly
	w, b := n/32, uint(n%32)
	for i := 0; i+w < Limbs; i++ {
		r[i] = p[i+w] >> b
		if b != 0 && i+w+1 < Limbs {
			r[i] |= p[i+w+1] << (32 - b)
		}
	}

	return r
}

// Times returns the carry-less product p*q truncated to degree 255.
// The product is exact only while deg(p)+deg(q) < 256; keeping the operands
// reduced below that is up to the caller.
func (p Poly) Times(q Poly) Poly {
	var prod Poly

	deg := q.Degree()
	for i := 0; i <= deg; i++ {
		if q.Bit(i) {
			prod = prod.Plus(p)
		}
		p = p.Lsh(1)
	}

	return prod
}

func (p Poly) Square() Poly {
	return p.Times(p)
}

// Mod returns the remainder of p divided by m. It panics if m is zero.
func (p Poly) Mod(m Poly) Poly {
	dm := m.Degree()
	if dm < 0 {
		panic("gf2: reduction modulo the zero polynomial")
	}

	dp := p.Degree()
	if dp < dm {
		return p
	}

	d := m.Lsh(dp - dm)
	for i := dp; i >= dm; i-- {
		if p.Bit(i) {
			p = p.Minus(d)
		}
		d = d.Rsh(1)
	}

	return p
}

// PowMod returns p^e mod m by square-and-multiply over all 128 bits of e,
// least significant bit first.
//
// Intermediate products are exact only when deg(m) <= 128, which holds for
// every characteristic polynomial this package is used with.
func (p Poly) PowMod(e uz.Uint128, m Poly) Poly {
	acc := One.Mod(m)
	base := p.Mod(m)

	for i := 0; i < uz.Bits; i++ {
		if e.Bit(i) {
			acc = acc.Times(base).Mod(m)
		}
		base = base.Square().Mod(m)
	}

	return acc
}

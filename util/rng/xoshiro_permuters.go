package rng

import "github.com/MersenneTwister-Lab/XSadd/util"

// permutes a [4]uint32 state according to XORSHIFT-ADD with shifts (15, 18, 11)
// http://www.math.sci.hiroshima-u.ac.jp/m-mat/MT/XSADD/
func xsaddPermuteState(s []uint32) uint32 {
	t := s[0]
	t ^= t << 15
	t ^= t >> 18
	t ^= s[3] << 11

	s[0] = s[1]
	s[1] = s[2]
	s[2] = s[3]
	s[3] = t

	return s[3] + s[2]
}

// permutes a [2]uint64 state according to xoroshiro128++
// https://prng.di.unimi.it/xoroshiro128plusplus.c
func xoroshiro128PPPermuteState(s []uint64) (result uint64) {
	s0 := s[0]
	s1 := s[1]
	result = util.RotL(s0+s1, 17) + s0

	s1 ^= s0
	s[0] = util.RotL(s0, 49) ^ s1 ^ (s1 << 21)
	s[1] = util.RotL(s1, 28)

	return
}

// permutes a [4]uint64 state according to xoshiro256++
// https://prng.di.unimi.it/xoshiro256plusplus.c
func xoshiro256PPPermuteState(s []uint64) (result uint64) {
	result = util.RotL(s[0]+s[3], 23) + s[0]

	t := s[1] << 17

	s[2] ^= s[0]
	s[3] ^= s[1]
	s[1] ^= s[2]
	s[0] ^= s[3]

	s[2] ^= t

	s[3] = util.RotL(s[3], 45)

	return
}

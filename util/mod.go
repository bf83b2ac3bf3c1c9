package util

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
	"unsafe"
)

// ErrInvalidDigit is matched by every *ParseError through errors.Is.
var ErrInvalidDigit = errors.New("invalid hex digit")

// ParseError reports a character outside [0-9a-fA-F] in a hex string.
type ParseError struct {
	Input  string
	Offset int
	Char   rune
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %q: invalid hex digit %q at offset %d", e.Input, e.Char, e.Offset)
}

func (e *ParseError) Unwrap() error {
	return ErrInvalidDigit
}

func RotL[T uint8 | uint16 | uint32 | uint64](x T, k uint) T {
	BitWidth := unsafe.Sizeof(x) * 8
	return (x << k) | (x >> (uint(BitWidth) - k))
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}

	return 0, false
}

// ParseLimbs decodes s (most significant digit first) into little-endian limbs.
// Digits that do not fit into dst are dropped from the most significant side,
// but every character of s must still be a hex digit.
func ParseLimbs[T uint16 | uint32 | uint64](dst []T, s string) error {
	for i := range dst {
		dst[i] = 0
	}

	var zero T
	digitsPerLimb := int(unsafe.Sizeof(zero) * 2)
	capacity := len(dst) * digitsPerLimb

	for off, r := range s {
		if r >= utf8.RuneSelf {
			return &ParseError{Input: s, Offset: off, Char: r}
		}
		if _, ok := hexNibble(byte(r)); !ok {
			return &ParseError{Input: s, Offset: off, Char: r}
		}
	}

	for i, j := len(s)-1, 0; i >= 0 && j < capacity; i, j = i-1, j+1 {
		n, _ := hexNibble(s[i])
		dst[j/digitsPerLimb] |= T(n) << (4 * (j % digitsPerLimb))
	}

	return nil
}

// ArrayToString formats little-endian limbs as canonical lowercase hex:
// no leading zeros, "0" for the zero value.
func ArrayToString[T uint8 | uint16 | uint32 | uint64](arr []T) string {
	var sb strings.Builder

	for i := len(arr) - 1; i >= 0; i-- {
		v := arr[i]
		if sb.Len() == 0 {
			if v != 0 {
				fmt.Fprintf(&sb, "%x", v)
			}
			continue
		}

		bitWidth := int(unsafe.Sizeof(v) * 8)
		fmt.Fprintf(&sb, "%0[1]*[2]x", bitWidth/4, v)
	}

	if sb.Len() == 0 {
		return "0"
	}

	return sb.String()
}

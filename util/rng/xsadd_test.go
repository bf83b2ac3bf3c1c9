package rng

import (
	"bytes"
	"errors"
	"log/slog"
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/MersenneTwister-Lab/XSadd/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stepN(state *XSaddState, n int) {
	for i := 0; i < n; i++ {
		state.Step()
	}
}

func TestXSaddOutput(t *testing.T) {
	state := NewXSadd(1234)
	assert.Equal(t, "bfb2c4f3e5f5b22e8b9a43970156d240", state.String())

	want := []uint32{
		1823491521, 1658333335, 1467485721, 45623648,
		3336175492, 2561136018, 181953608, 768231638,
	}
	for i, w := range want {
		assert.Equal(t, w, state.Uint32(), "output %d", i)
	}
}

func TestXSaddUint64(t *testing.T) {
	state := NewXSadd(1234)
	assert.Equal(t, uint64(0x6cb045c162d82897), state.Uint64())

	r := rand.New(NewXSadd(1234))
	assert.Equal(t, uint64(0x6cb045c162d82897), r.Uint64())
}

func TestXSaddSeeding(t *testing.T) {
	assert.Equal(t, "a67f5c8b6b1e2fbf00c0b7af8612f40d", NewXSadd(0).String())
	assert.Equal(t, "06c63268348e14cf5ef85a226371a50e", NewXSadd(1791095845).String())
	assert.NotEqual(t, NewXSadd(1).State, NewXSadd(2).State)
}

func TestXSaddJumpPolynomial(t *testing.T) {
	tests := []struct {
		name string
		mul  uint32
		base string
		want string
	}{
		{name: "zero base", mul: 139, base: "0", want: "1"},
		{name: "zero multiplier", mul: 0, base: "ffff", want: "1"},
		{name: "one step", mul: 1, base: "1", want: "2"},
		{name: "127 steps", mul: 127, base: "1", want: "80000000000000000000000000000000"},
		{name: "multiplied", mul: 139, base: "10000", want: "37498203d7fb830056ba7594c76d4ffb"},
		{name: "2^64", mul: 1, base: "10000000000000000", want: "ad97ad554a3f3aa87bacae76fe10e86d"},
		{name: "full period", mul: 1, base: "ffffffffffffffffffffffffffffffff", want: "1"},
		{name: "wraps to zero", mul: 2, base: "80000000000000000000000000000000", want: "1"},
		{name: "wraps to 2^127+3", mul: 3, base: "80000000000000000000000000000001", want: "35113014340a8db243e8b8d1b7806344"},
		{name: "truncated base", mul: 1, base: "ff80000000000000000000000000000003", want: "35113014340a8db243e8b8d1b7806344"},
		{name: "upper case base", mul: 139, base: "1ABCDEF", want: "f44bc33ed8dc3844526d7955bd4b1bc0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := XSaddJumpPolynomial(tt.mul, tt.base)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len(got), 32)
		})
	}
}

func TestXSaddJumpPolynomialInvalid(t *testing.T) {
	_, err := XSaddJumpPolynomial(1, "12z")
	require.Error(t, err)
	assert.True(t, errors.Is(err, util.ErrInvalidDigit))

	var perr *util.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 2, perr.Offset)
	assert.Equal(t, 'z', perr.Char)
}

func TestXSaddJumpIdentity(t *testing.T) {
	tests := []struct {
		name string
		seed uint32
		mul  uint32
		base string
	}{
		{name: "zero base", seed: 1791095845, mul: 139, base: "0"},
		{name: "zero multiplier", seed: 1234, mul: 0, base: "123456789abcdef"},
		{name: "full period", seed: 4321, mul: 1, base: "ffffffffffffffffffffffffffffffff"},
		{name: "wrapped product", seed: 99, mul: 2, base: "80000000000000000000000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewXSadd(tt.seed)
			before := *state
			require.NoError(t, state.Jump(tt.mul, tt.base))
			assert.Equal(t, before, *state)
		})
	}
}

func TestXSaddJumpOneStep(t *testing.T) {
	jumped := NewXSadd(1234)
	stepped := NewXSadd(1234)

	require.NoError(t, jumped.Jump(1, "1"))
	stepped.Step()

	assert.Equal(t, stepped.State, jumped.State)
	assert.Equal(t, stepped.Uint32(), jumped.Uint32())
}

func TestXSaddJumpMatchesStepping(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 1))

	for i := 0; i < 100; i++ {
		seed := rnd.Uint32()
		mul := rnd.Uint32N(500)

		jumped := NewXSadd(seed)
		stepped := NewXSadd(seed)

		require.NoError(t, jumped.Jump(mul, "1"))
		stepN(stepped, int(mul))

		assert.Equal(t, stepped.State, jumped.State, "seed %d step %d", seed, mul)
	}
}

func TestXSaddJumpMultipliedBase(t *testing.T) {
	rnd := rand.New(rand.NewPCG(2, 2))

	for i := 0; i < 20; i++ {
		seed := rnd.Uint32()
		mul := 1 + rnd.Uint32N(40)
		base := 1 + rnd.IntN(60)

		jumped := NewXSadd(seed)
		stepped := NewXSadd(seed)

		require.NoError(t, jumped.Jump(mul, new(big.Int).SetInt64(int64(base)).Text(16)))
		stepN(stepped, int(mul)*base)

		assert.Equal(t, stepped.State, jumped.State)
	}
}

func TestXSaddJumpLarge(t *testing.T) {
	rnd := rand.New(rand.NewPCG(3, 3))

	for i := 0; i < 20; i++ {
		seed := rnd.Uint32()
		mul := rnd.Uint32N(500)
		base := new(big.Int).SetUint64(rnd.Uint64())
		base.Lsh(base, 6).Or(base, big.NewInt(int64(rnd.IntN(64))))

		a := NewXSadd(seed)
		b := NewXSadd(seed)

		require.NoError(t, a.Jump(mul, base.Text(16)))
		product := new(big.Int).Mul(base, big.NewInt(int64(mul)))
		require.NoError(t, b.Jump(1, product.Text(16)))

		assert.Equal(t, b.State, a.State)
	}
}

func TestXSaddJumpComposes(t *testing.T) {
	tests := []struct {
		name   string
		m1, m2 uint32
		b1, b2 string
	}{
		{name: "small", m1: 3, b1: "7", m2: 5, b2: "b"},
		{name: "large", m1: 139, b1: "123456789abcdef0123", m2: 0xffffffff, b2: "fedcba9876543210"},
		{name: "with zero", m1: 0, b1: "1", m2: 17, b2: "abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			twice := NewXSadd(1234)
			require.NoError(t, twice.Jump(tt.m1, tt.b1))
			require.NoError(t, twice.Jump(tt.m2, tt.b2))

			b1, _ := new(big.Int).SetString(tt.b1, 16)
			b2, _ := new(big.Int).SetString(tt.b2, 16)
			sum := new(big.Int).Mul(b1, big.NewInt(int64(tt.m1)))
			sum.Add(sum, new(big.Int).Mul(b2, big.NewInt(int64(tt.m2))))

			once := NewXSadd(1234)
			require.NoError(t, once.Jump(1, sum.Text(16)))

			assert.Equal(t, once.State, twice.State)
		})
	}
}

func TestXSaddJumpKnownState(t *testing.T) {
	state := NewXSadd(1234)
	require.NoError(t, state.Jump(1, "10000000000000000"))
	assert.Equal(t, "c830c152d5c21abd65193e5fa687853e", state.String())
}

func TestXSaddJumpByPolynomial(t *testing.T) {
	jump, err := XSaddJumpPolynomial(139, "10000")
	require.NoError(t, err)

	a := NewXSadd(77)
	b := NewXSadd(77)
	require.NoError(t, a.JumpByPolynomial(jump))
	require.NoError(t, b.Jump(139, "10000"))
	assert.Equal(t, b.State, a.State)

	// a cached polynomial can be reused
	require.NoError(t, a.JumpByPolynomial(jump))
	require.NoError(t, b.JumpByPolynomial(jump))
	assert.Equal(t, b.State, a.State)
}

func TestXSaddJumpInvalidLeavesState(t *testing.T) {
	state := NewXSadd(5)
	before := *state

	err := state.Jump(3, "xyz")
	require.Error(t, err)
	assert.True(t, errors.Is(err, util.ErrInvalidDigit))
	assert.Equal(t, before, *state)

	err = state.JumpByPolynomial("12 34")
	require.Error(t, err)
	assert.True(t, errors.Is(err, util.ErrInvalidDigit))
	assert.Equal(t, before, *state)
}

func TestXSaddJumpLogging(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	_, err := XSaddJumpPolynomial(139, "10000")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "calculated jump polynomial")
	assert.Contains(t, out, "step=8b0000")
	assert.Contains(t, out, "jump=37498203d7fb830056ba7594c76d4ffb")
}

func BenchmarkXSaddUint32(b *testing.B) {
	state := NewXSadd(1234)
	var sum uint32

	for i := 0; i < b.N; i++ {
		sum ^= state.Uint32()
	}
	_ = sum
}

func BenchmarkXSaddJump(b *testing.B) {
	state := NewXSadd(1234)

	for i := 0; i < b.N; i++ {
		_ = state.Jump(139, "ffffffffffffffffffffffff")
	}
}

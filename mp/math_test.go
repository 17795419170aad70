package mp

import (
	"math"
	"math/big"
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxDigits(t *testing.T) {
	assert.Equal(t, 20, MaxDigits)
	assert.Equal(t, len(strconv.FormatUint(math.MaxUint64, 10)), MaxDigits)
}

func TestPow10(t *testing.T) {
	p := uint64(1)
	for i := 0; i < 20; i++ {
		v, ok := Pow10(i)
		require.True(t, ok, "10^%d", i)
		assert.Equal(t, p, v)
		p *= 10
	}
	_, ok := Pow10(20)
	assert.False(t, ok)
	_, ok = Pow10(-1)
	assert.False(t, ok)
}

func TestMul(t *testing.T) {
	v, ok := Mul(1212, 101)
	assert.True(t, ok)
	assert.Equal(t, uint64(122412), v)

	_, ok = Mul(math.MaxUint64, 2)
	assert.False(t, ok)

	// 1844674408 * (10^10 + 1) is just over the top
	_, ok = Mul(1844674408, 10_000_000_001)
	assert.False(t, ok)
	v, ok = Mul(1844674407, 10_000_000_001)
	assert.True(t, ok)
	assert.Equal(t, uint64(18446744071844674407), v)

	for i := 0; i < 1000; i++ {
		a := uint64(rand.Uint32())
		b := uint64(rand.Uint32())
		v, ok := Mul(a, b)
		assert.True(t, ok)
		assert.Equal(t, a*b, v)
	}
}

func TestAdd(t *testing.T) {
	v, ok := Add(math.MaxUint64-1, 1)
	assert.True(t, ok)
	assert.Equal(t, uint64(math.MaxUint64), v)

	_, ok = Add(math.MaxUint64, 1)
	assert.False(t, ok)
}

func TestPow(t *testing.T) {
	v, ok := Pow(10, 19)
	assert.True(t, ok)
	assert.Equal(t, uint64(10_000_000_000_000_000_000), v)

	_, ok = Pow(10, 20)
	assert.False(t, ok)

	v, ok = Pow(2, 63)
	assert.True(t, ok)
	assert.Equal(t, uint64(1)<<63, v)
	_, ok = Pow(2, 64)
	assert.False(t, ok)

	v, ok = Pow(7, 0)
	assert.True(t, ok)
	assert.Equal(t, uint64(1), v)

	// squaring the base must not trip overflow after the last multiply
	v, ok = Pow(1<<32, 1)
	assert.True(t, ok)
	assert.Equal(t, uint64(1)<<32, v)
}

func TestDivCeil(t *testing.T) {
	assert.Equal(t, uint64(0), DivCeil(0, 11))
	assert.Equal(t, uint64(1), DivCeil(1, 11))
	assert.Equal(t, uint64(1), DivCeil(11, 11))
	assert.Equal(t, uint64(2), DivCeil(12, 11))
	assert.Equal(t, uint64(math.MaxUint64), DivCeil(math.MaxUint64, 1))
	assert.Equal(t, uint64(1)<<63, DivCeil(math.MaxUint64, 2))
}

func TestDigits(t *testing.T) {
	assert.Equal(t, 1, Digits(0))
	assert.Equal(t, 1, Digits(9))
	assert.Equal(t, 2, Digits(10))
	assert.Equal(t, 19, Digits(9_999_999_999_999_999_999))
	assert.Equal(t, 20, Digits(10_000_000_000_000_000_000))

	for i := 0; i < 1000; i++ {
		x := rand.Uint64() >> rand.UintN(64)
		assert.Equal(t, len(strconv.FormatUint(x, 10)), Digits(x), "digits of %d", x)
	}
}

func TestRepeatMultiplier(t *testing.T) {
	cases := []struct {
		blockLen, k int
		want        uint64
	}{
		{1, 1, 1},
		{1, 2, 11},
		{2, 2, 101},
		{2, 3, 10101},
		{3, 2, 1001},
		{1, 6, 111111},
		{10, 2, 10_000_000_001},
		{1, 20, 11_111_111_111_111_111_111},
	}
	for _, c := range cases {
		m, ok := RepeatMultiplier(c.blockLen, c.k)
		require.True(t, ok, "l=%d k=%d", c.blockLen, c.k)
		assert.Equal(t, c.want, m, "l=%d k=%d", c.blockLen, c.k)
	}

	_, ok := RepeatMultiplier(1, 21)
	assert.False(t, ok)
	_, ok = RepeatMultiplier(10, 3)
	assert.False(t, ok)
	_, ok = RepeatMultiplier(0, 3)
	assert.False(t, ok)
}

func TestUint128_Add(t *testing.T) {
	a := Uint128{}
	a.Add(math.MaxUint64)
	a.Add(1)
	assert.Equal(t, Uint128{Hi: 1, Lo: 0}, a)
	_, ok := a.Uint64()
	assert.False(t, ok)

	want := new(big.Int)
	a = Uint128{}
	for i := 0; i < 1000; i++ {
		x := rand.Uint64()
		a.Add(x)
		want.Add(want, new(big.Int).SetUint64(x))
	}
	assert.Equal(t, 0, want.Cmp(a.Big()))

	b := a
	b.Add128(a)
	want.Add(want, want)
	assert.Equal(t, 0, want.Cmp(b.Big()))
	assert.Equal(t, 1, b.Cmp(a))
	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 0, a.Cmp(a))
}

func TestUint128_Big(t *testing.T) {
	a := Uint128{Hi: 1, Lo: 2}
	want, _ := new(big.Int).SetString("18446744073709551618", 10)
	assert.Equal(t, 0, want.Cmp(a.Big()))

	v, ok := Uint128{Lo: 42}.Uint64()
	assert.True(t, ok)
	assert.Equal(t, uint64(42), v)
}

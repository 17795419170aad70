package mp

import (
	"math"
	"math/big"
	"math/bits"
)

// MaxDigits is the number of decimal digits in math.MaxUint64. Every digit
// length below this is a complete class; at MaxDigits only the values up to
// math.MaxUint64 exist.
var MaxDigits = Digits(math.MaxUint64)

var pow10 [20]uint64

func init() {
	p := uint64(1)
	for i := range pow10 {
		pow10[i] = p
		p *= 10
	}
}

// Pow10 returns 10^n. The second result is false if 10^n does not fit in a
// uint64 or n is negative.
func Pow10(n int) (uint64, bool) {
	if n < 0 || n >= len(pow10) {
		return 0, false
	}
	return pow10[n], true
}

// Mul returns a*b and whether the product fit in 64 bits.
func Mul(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi == 0
}

// Add returns a+b and whether the sum fit in 64 bits.
func Add(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	return sum, carry == 0
}

// Pow returns base^n by repeated squaring, reporting overflow instead of
// wrapping.
func Pow(base uint64, n uint) (uint64, bool) {
	z := uint64(1)
	for n > 0 {
		var ok bool
		if n%2 == 1 {
			if z, ok = Mul(z, base); !ok {
				return 0, false
			}
		}
		n = n / 2
		if n > 0 {
			if base, ok = Mul(base, base); !ok {
				return 0, false
			}
		}
	}
	return z, true
}

// DivCeil returns ceil(a/b). b must not be zero.
func DivCeil(a, b uint64) uint64 {
	q := a / b
	if a%b != 0 {
		q++
	}
	return q
}

// Digits returns the number of decimal digits in x. Zero has one digit.
func Digits(x uint64) int {
	n := 1
	for x >= 10 {
		x /= 10
		n++
	}
	return n
}

// RepeatMultiplier returns the place-value weight that turns a block of
// blockLen digits into k copies of itself, that is the sum of
// 10^(blockLen*i) for i in [0, k). For blockLen=2, k=3 this is 10101.
func RepeatMultiplier(blockLen, k int) (uint64, bool) {
	if blockLen < 1 || k < 1 {
		return 0, false
	}
	base, ok := Pow10(blockLen)
	if !ok {
		return 0, false
	}
	m := uint64(0)
	term := uint64(1)
	for i := 0; i < k; i++ {
		if m, ok = Add(m, term); !ok {
			return 0, false
		}
		if i < k-1 {
			if term, ok = Mul(term, base); !ok {
				return 0, false
			}
		}
	}
	return m, true
}

// Uint128 is an unsigned 128-bit accumulator. Like the rest of this package
// it is a plain value, so it can live on the stack.
type Uint128 struct {
	Hi, Lo uint64
}

// Add destructively adds a 64-bit quantity.
func (a *Uint128) Add(b uint64) {
	var carry uint64
	a.Lo, carry = bits.Add64(a.Lo, b, 0)
	a.Hi += carry
}

// Add128 destructively adds another 128-bit value.
func (a *Uint128) Add128(b Uint128) {
	var carry uint64
	a.Lo, carry = bits.Add64(a.Lo, b.Lo, 0)
	a.Hi, _ = bits.Add64(a.Hi, b.Hi, carry)
}

// Cmp returns -1, 0 or 1 if a < b, a == b or a > b, respectively.
func (a Uint128) Cmp(b Uint128) int {
	switch {
	case a.Hi > b.Hi:
		return 1
	case a.Hi < b.Hi:
		return -1
	case a.Lo > b.Lo:
		return 1
	case a.Lo < b.Lo:
		return -1
	}
	return 0
}

// Uint64 returns the value if it fits in 64 bits.
func (a Uint128) Uint64() (uint64, bool) {
	return a.Lo, a.Hi == 0
}

// Big returns the value as a new big.Int.
func (a Uint128) Big() *big.Int {
	z := new(big.Int).SetUint64(a.Hi)
	z.Lsh(z, 64)
	return z.Or(z, new(big.Int).SetUint64(a.Lo))
}

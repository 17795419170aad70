package periodic

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/shopspring/decimal"

	"PeriodicDigits/mp"
)

// Class describes the periodic numbers of one digit length. The sums of the
// longer classes do not fit in 64 bits, so they are kept as decimals.
type Class struct {
	Length    int             `json:"length"`
	Doubles   uint64          `json:"doubles"`
	DoubleSum decimal.Decimal `json:"double_sum"`
	Repeats   uint64          `json:"repeats"`
	RepeatSum decimal.Decimal `json:"repeat_sum"`
}

// ClassRange returns the interval holding every number of the given digit
// length. Length 1 includes zero.
func ClassRange(length int) (Range, error) {
	if length < 1 || length >= mp.MaxDigits {
		return Range{}, fmt.Errorf("digit length %d outside [1, %d]", length, mp.MaxDigits-1)
	}
	hi, _ := mp.Pow10(length)
	lo := hi / 10
	if length == 1 {
		lo = 0
	}
	return Range{Start: lo, End: hi - 1}, nil
}

// Census counts and sums the periodic numbers of one digit length in closed
// form, without generating them.
//
// Every d-digit block repeated length/d times is a number of the class, so
// each proper divisor d of length contributes a family of 9*10^(d-1) values.
// Families overlap: a number with periods d and d' also has period
// gcd(d, d'). Every proper period divides length/q for some prime q of
// length, so inclusion-exclusion over those primes counts each value once.
func Census(length int) (Class, error) {
	if _, err := ClassRange(length); err != nil {
		return Class{}, err
	}
	c := Class{
		Length:    length,
		DoubleSum: decimal.Zero,
		RepeatSum: decimal.Zero,
	}
	if length%2 == 0 {
		c.Doubles, c.DoubleSum = family(length/2, 2)
	}

	primes := primeFactors(length)
	count := int64(0)
	for subset := uint(1); subset < 1<<len(primes); subset++ {
		k := 1
		for i, q := range primes {
			if subset&(1<<i) != 0 {
				k *= q
			}
		}
		n, sum := family(length/k, k)
		if bits.OnesCount(subset)%2 == 1 {
			count += int64(n)
			c.RepeatSum = c.RepeatSum.Add(sum)
		} else {
			count -= int64(n)
			c.RepeatSum = c.RepeatSum.Sub(sum)
		}
	}
	c.Repeats = uint64(count)
	return c, nil
}

// family returns the count and sum of all blockLen-digit blocks repeated k
// times. The caller keeps blockLen*k below mp.MaxDigits, so the multiplier
// always fits.
func family(blockLen, k int) (uint64, decimal.Decimal) {
	multiplier, _ := mp.RepeatMultiplier(blockLen, k)
	hi, _ := mp.Pow10(blockLen)
	lo := hi / 10
	count := hi - lo

	// lo + (lo+1) + ... + (hi-1); blockLen is at most 9 here
	blocks := (lo + hi - 1) * count / 2
	return count, fromUint64(blocks).Mul(fromUint64(multiplier))
}

func fromUint64(v uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0)
}

// primeFactors returns the distinct primes dividing n in increasing order.
func primeFactors(n int) []int {
	var primes []int
	for q := 2; q*q <= n; q++ {
		if n%q == 0 {
			primes = append(primes, q)
			for n%q == 0 {
				n /= q
			}
		}
	}
	if n > 1 {
		primes = append(primes, n)
	}
	return primes
}

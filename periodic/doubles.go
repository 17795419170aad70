package periodic

import (
	"PeriodicDigits/mp"
)

// eachDouble calls visit, in increasing order, for every value in r whose
// decimal form is some block written twice (1212, 987987).
//
// A block p of m digits doubles to p*(10^m+1). For a fixed m those values
// increase with p, so the scan starts at the first block that could reach
// r.Start and stops at the first one past r.End. Different m give different
// digit lengths, so nothing is visited twice.
func eachDouble(r Range, visit func(uint64)) {
	for m := 1; m <= mp.MaxDigits/2; m++ {
		base, _ := mp.Pow10(m)
		multiplier := base + 1
		minBlock := base / 10
		maxBlock := base - 1

		p := max(minBlock, mp.DivCeil(r.Start, multiplier))
		for ; p <= maxBlock; p++ {
			value, ok := mp.Mul(p, multiplier)
			if !ok || value > r.End {
				break
			}
			visit(value)
		}
	}
}

// SumDoubles returns the sum of the values in r whose decimal form is two
// copies of the same block. The sum must fit in 64 bits; SumDoublesExact has
// no such limit.
func SumDoubles(r Range) uint64 {
	sum := uint64(0)
	eachDouble(r, func(v uint64) {
		sum += v
	})
	return sum
}

// CountDoubles returns how many values SumDoubles adds up.
func CountDoubles(r Range) uint64 {
	n := uint64(0)
	eachDouble(r, func(uint64) {
		n++
	})
	return n
}

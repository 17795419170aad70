package periodic

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"PeriodicDigits/mp"
)

// repeatSet collects every value in r whose decimal form is a block of l
// digits written k >= 2 times, for any l and k.
//
// One value can come from several (l, k) pairs: 111111 is 1 six times, 11
// three times and 111 twice. The ordered set keeps each value once.
func repeatSet(r Range) *treeset.Set {
	set := treeset.NewWith(utils.UInt64Comparator)
	for l := 1; l <= mp.MaxDigits/2; l++ {
		base, _ := mp.Pow10(l)
		minBlock := base / 10
		maxBlock := base - 1

		for k := 2; l*k <= mp.MaxDigits; k++ {
			// a longer repeat only grows the multiplier, so once it
			// overflows no larger k can fit either
			multiplier, ok := mp.RepeatMultiplier(l, k)
			if !ok || multiplier == 0 {
				break
			}

			p := max(minBlock, mp.DivCeil(r.Start, multiplier))
			for ; p <= maxBlock; p++ {
				value, ok := mp.Mul(p, multiplier)
				if !ok || value > r.End {
					break
				}
				set.Add(value)
			}
		}
	}
	return set
}

// eachRepeat calls visit once, in increasing order, for every distinct value
// in r made of a repeated block.
func eachRepeat(r Range, visit func(uint64)) {
	it := repeatSet(r).Iterator()
	for it.Next() {
		visit(it.Value().(uint64))
	}
}

// SumRepeats returns the sum of the distinct values in r whose decimal form
// is a block repeated at least twice (111, 1212, 123123123). Each value is
// counted once however many ways it decomposes.
func SumRepeats(r Range) uint64 {
	sum := uint64(0)
	eachRepeat(r, func(v uint64) {
		sum += v
	})
	return sum
}

// CountRepeats returns how many distinct values SumRepeats adds up.
func CountRepeats(r Range) uint64 {
	return uint64(repeatSet(r).Size())
}

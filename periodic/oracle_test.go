package periodic

import (
	"strconv"
	"strings"
)

// The brute-force versions walk every value in the range and compare digit
// strings. They are far too slow for real inputs but are easy to trust.

func isDouble(v uint64) bool {
	s := strconv.FormatUint(v, 10)
	n := len(s)
	return n%2 == 0 && s[:n/2] == s[n/2:]
}

func isRepeat(v uint64) bool {
	s := strconv.FormatUint(v, 10)
	for size := 1; size <= len(s)/2; size++ {
		if len(s)%size == 0 && strings.Repeat(s[:size], len(s)/size) == s {
			return true
		}
	}
	return false
}

func bruteSum(r Range, keep func(uint64) bool) (sum, count uint64) {
	for v := r.Start; ; v++ {
		if keep(v) {
			sum += v
			count++
		}
		if v == r.End {
			break
		}
	}
	return sum, count
}

package common

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"PeriodicDigits/mp"
)

var limitDecoder = regexp.MustCompile(`^([0-9_]+)([MGTPE]*)$`)

// DecodeLimit parses a non-negative integer that may use `_` as a digit
// separator and end in any run of the suffixes M, G, T, P and E, each of
// which multiplies by the matching power of ten. "10M" is 10_000_000 and
// "1GM" is 10^15.
func DecodeLimit(limitString string) (uint64, error) {
	pieces := limitDecoder.FindStringSubmatch(strings.TrimSpace(limitString))
	if pieces == nil {
		return 0, fmt.Errorf("bad limit %q", limitString)
	}
	limit, err := strconv.ParseUint(strings.ReplaceAll(pieces[1], "_", ""), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad limit %q: %w", limitString, err)
	}
	for _, s := range pieces[2] {
		var scale uint64
		switch s {
		case 'M':
			scale = 1_000_000
		case 'G':
			scale = 1_000_000_000
		case 'T':
			scale = 1_000_000_000_000
		case 'P':
			scale = 1_000_000_000_000_000
		case 'E':
			scale = 1_000_000_000_000_000_000
		default:
			return 0, fmt.Errorf("unrecognized limit format '%c' from %q, can't happen", s, pieces[2])
		}
		var ok bool
		if limit, ok = mp.Mul(limit, scale); !ok {
			return 0, fmt.Errorf("limit %q overflows 64 bits", limitString)
		}
	}
	return limit, nil
}

// FormatLimit renders a limit compactly, the inverse of DecodeLimit up to
// one decimal place.
func FormatLimit(limit uint64) string {
	switch {
	case limit >= 1_000_000_000_000_000_000:
		return fmt.Sprintf("%.1fE", float64(limit)/1e18)
	case limit >= 1_000_000_000_000_000:
		return fmt.Sprintf("%.1fP", float64(limit)/1e15)
	case limit >= 1_000_000_000_000:
		return fmt.Sprintf("%.1fT", float64(limit)/1e12)
	case limit >= 1_000_000_000:
		return fmt.Sprintf("%.1fG", float64(limit)/1e9)
	case limit >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(limit)/1e6)
	default:
		return strconv.FormatUint(limit, 10)
	}
}

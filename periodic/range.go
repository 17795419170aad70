package periodic

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"PeriodicDigits/common"
)

// ErrMalformedRange is wrapped by every error ParseRange returns.
var ErrMalformedRange = errors.New("malformed range")

// Range is the closed interval [Start, End]. Start must not exceed End; the
// parser enforces that and the summers assume it.
type Range struct {
	Start uint64
	End   uint64
}

// Contains reports whether v lies in r.
func (r Range) Contains(v uint64) bool {
	return r.Start <= v && v <= r.End
}

// Len returns the number of integers in r, saturating at math.MaxUint64 for
// the one range ([0, math.MaxUint64]) whose size does not fit.
func (r Range) Len() uint64 {
	n := r.End - r.Start
	if n == math.MaxUint64 {
		return n
	}
	return n + 1
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// ParseRange parses a single "start-end" token. Surrounding whitespace is
// ignored and the bounds may use the suffixes understood by
// common.DecodeLimit.
func ParseRange(s string) (Range, error) {
	startStr, endStr, ok := strings.Cut(s, "-")
	if !ok {
		return Range{}, fmt.Errorf("%w: %q: expected start-end", ErrMalformedRange, s)
	}
	start, err := common.DecodeLimit(startStr)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: start: %w", ErrMalformedRange, s, err)
	}
	end, err := common.DecodeLimit(endStr)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: end: %w", ErrMalformedRange, s, err)
	}
	if start > end {
		return Range{}, fmt.Errorf("%w: %q: start exceeds end", ErrMalformedRange, s)
	}
	return Range{Start: start, End: end}, nil
}

// ParseRanges parses a comma separated list of ranges. Empty tokens, such
// as the one left by a trailing comma or newline, are skipped.
func ParseRanges(s string) ([]Range, error) {
	var ranges []Range
	for _, token := range strings.Split(s, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		r, err := ParseRange(token)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

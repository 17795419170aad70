package periodic

import (
	"time"
)

// Puzzle holds a parsed list of ranges. Part1 sums the doubled values over
// all of them and Part2 the repeated ones.
type Puzzle struct {
	Ranges []Range
}

// NewPuzzle parses the comma separated ranges in input.
func NewPuzzle(input string) (*Puzzle, error) {
	ranges, err := ParseRanges(input)
	if err != nil {
		return nil, err
	}
	return &Puzzle{Ranges: ranges}, nil
}

func (p *Puzzle) Part1() uint64 {
	return Aggregate(p.Ranges, SumDoubles)
}

func (p *Puzzle) Part2() uint64 {
	return Aggregate(p.Ranges, SumRepeats)
}

// Report is the outcome of one timed run.
type Report struct {
	Ranges    int
	Parse     time.Duration
	Part1     uint64
	Part1Time time.Duration
	Part2     uint64
	Part2Time time.Duration
}

// Run parses input and times each part separately.
func Run(input string) (Report, error) {
	t0 := time.Now()
	p, err := NewPuzzle(input)
	if err != nil {
		return Report{}, err
	}
	r := Report{
		Ranges: len(p.Ranges),
		Parse:  time.Since(t0),
	}

	t1 := time.Now()
	r.Part1 = p.Part1()
	r.Part1Time = time.Since(t1)

	t2 := time.Now()
	r.Part2 = p.Part2()
	r.Part2Time = time.Since(t2)
	return r, nil
}

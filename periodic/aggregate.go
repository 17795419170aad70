package periodic

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"PeriodicDigits/mp"
)

// Summer computes a per-range sum. SumDoubles and SumRepeats are Summers.
type Summer func(Range) uint64

// ExactSummer computes a per-range sum without a 64-bit limit.
type ExactSummer func(Range) decimal.Decimal

// Aggregate adds up sum over every range. The order of ranges does not
// matter and an empty list sums to zero.
func Aggregate(ranges []Range, sum Summer) uint64 {
	total := uint64(0)
	for _, r := range ranges {
		total += sum(r)
	}
	return total
}

// AggregateParallel computes the same total as Aggregate using the given
// number of workers. A dispatcher hands out range indexes and each worker
// keeps its own partial sum; the partials are added once every worker is
// done. It stops early with the context's error if ctx is cancelled.
func AggregateParallel(ctx context.Context, ranges []Range, sum Summer, workers int) (uint64, error) {
	if workers < 1 {
		return 0, fmt.Errorf("need at least one worker, got %d", workers)
	}
	workers = min(workers, max(len(ranges), 1))

	g, ctx := errgroup.WithContext(ctx)
	dispatch := make(chan int, workers)
	g.Go(func() error {
		defer close(dispatch)
		for i := range ranges {
			select {
			case dispatch <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	partials := make([]uint64, workers)
	for w := 0; w < workers; w++ {
		w := w // per-iteration copy; go 1.21 loop variables are shared
		g.Go(func() error {
			for i := range dispatch {
				if err := ctx.Err(); err != nil {
					return err
				}
				partials[w] += sum(ranges[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return sumAll(partials), nil
}

func sumAll(xs []uint64) uint64 {
	total := uint64(0)
	for _, x := range xs {
		total += x
	}
	return total
}

// ExactAggregate adds up sum over every range without overflowing.
func ExactAggregate(ranges []Range, sum ExactSummer) decimal.Decimal {
	total := decimal.Zero
	for _, r := range ranges {
		total = total.Add(sum(r))
	}
	return total
}

// SumDoublesExact is SumDoubles with a 128-bit accumulator, so huge ranges
// report their true total.
func SumDoublesExact(r Range) decimal.Decimal {
	var acc mp.Uint128
	eachDouble(r, acc.Add)
	return fromUint128(acc)
}

// SumRepeatsExact is SumRepeats with a 128-bit accumulator.
func SumRepeatsExact(r Range) decimal.Decimal {
	var acc mp.Uint128
	eachRepeat(r, acc.Add)
	return fromUint128(acc)
}

func fromUint128(v mp.Uint128) decimal.Decimal {
	return decimal.NewFromBigInt(v.Big(), 0)
}

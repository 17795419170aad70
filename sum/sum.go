package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/message"

	"PeriodicDigits/common"
	"PeriodicDigits/periodic"
)

/*
Adds up the integers in a list of ranges whose decimal digits are a repeated
block.

Part 1 counts values that are one block written twice, like 6464 or 123123.
Part 2 counts values that are any block written two or more times, like 111,
121212 or 123123, each value once.

Ranges come as comma separated start-end pairs, either as arguments, from
the file named by --input (or PERIODIC_INPUT), or on stdin. Bounds may use
the M, G, T, P and E power of ten suffixes.
*/

type options struct {
	input   string
	threads int
	exact   bool
	verbose bool
	part    int
}

var parts = []struct {
	name  string
	sum   periodic.Summer
	exact periodic.ExactSummer
}{
	{"doubled blocks", periodic.SumDoubles, periodic.SumDoublesExact},
	{"repeated blocks", periodic.SumRepeats, periodic.SumRepeatsExact},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "sum [start-end,...]",
		Short: "Sum the periodic numbers in a list of ranges",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := common.LoadEnv()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("input") {
				opts.input = env.Input
			}
			if !cmd.Flags().Changed("threads") {
				opts.threads = env.Threads
			}
			if !cmd.Flags().Changed("verbose") {
				opts.verbose = env.Verbose
			}
			return run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), args, opts)
		},
		SilenceUsage: true,
	}
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "file of comma separated ranges, - for stdin")
	cmd.Flags().IntVarP(&opts.threads, "threads", "t", 0, "number of workers, 0 for half the CPUs")
	cmd.Flags().BoolVar(&opts.exact, "exact", false, "report totals that do not fit in 64 bits")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	cmd.Flags().IntVar(&opts.part, "part", 0, "part to run, 1 or 2, 0 for both")
	return cmd
}

func run(ctx context.Context, stdin io.Reader, out io.Writer, args []string, opts *options) error {
	if opts.part < 0 || opts.part > len(parts) {
		return fmt.Errorf("invalid part %d: must be 0, 1 or 2", opts.part)
	}
	if opts.threads < 0 {
		return fmt.Errorf("invalid thread count %d", opts.threads)
	}

	input, err := readInput(stdin, args, opts.input)
	if err != nil {
		return err
	}

	t0 := time.Now()
	ranges, err := periodic.ParseRanges(input)
	if err != nil {
		return err
	}
	parse := time.Since(t0)

	workers := common.WorkerCount(opts.threads)
	if opts.verbose {
		p := message.NewPrinter(message.MatchLanguage("en"))
		widest := uint64(0)
		for _, r := range ranges {
			widest = max(widest, r.Len())
		}
		log.Print(p.Sprintf("parsed %d ranges in %v, widest spans %s values, %d workers",
			len(ranges), parse, common.FormatLimit(widest), workers))
	}

	for i, part := range parts {
		if opts.part != 0 && opts.part != i+1 {
			continue
		}
		t1 := time.Now()
		var total string
		if opts.exact {
			total = periodic.ExactAggregate(ranges, part.exact).String()
		} else {
			n, err := periodic.AggregateParallel(ctx, ranges, part.sum, workers)
			if err != nil {
				return fmt.Errorf("part %d: %w", i+1, err)
			}
			total = fmt.Sprint(n)
		}
		dt := time.Since(t1)
		if opts.verbose {
			log.Printf("part %d (%s) took %v", i+1, part.name, dt)
		}
		_, err := fmt.Fprintf(out, "Part %02d: %s [%v]\n", i+1, total, dt)
		if err != nil {
			return err
		}
	}
	return nil
}

// readInput picks the ranges from the arguments if there are any, then the
// named file, then stdin.
func readInput(stdin io.Reader, args []string, path string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, ","), nil
	}
	if path == "" || path == "-" {
		txt, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(txt), nil
	}
	txt, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(txt), nil
}

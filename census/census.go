package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/message"

	"PeriodicDigits/mp"
	"PeriodicDigits/periodic"
)

/*
Tabulates the periodic numbers of each digit length: how many there are and
what they add up to, both for values that are one block written twice and
for values that are any block written two or more times.

The table comes from closed forms, so even the 18 and 19 digit classes, which
hold close to a billion doubled values, print instantly. --check recomputes
the shorter classes with the range summers and fails on any mismatch.
*/

type options struct {
	maxLength int
	check     int
	jsonPath  string
	verbose   bool
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "census",
		Short: "Count and sum the periodic numbers of each digit length",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), opts)
		},
		SilenceUsage: true,
	}
	cmd.Flags().IntVar(&opts.maxLength, "max-length", mp.MaxDigits-1, "largest digit length to tabulate")
	cmd.Flags().IntVar(&opts.check, "check", 0, "recompute classes up to this length with the range summers")
	cmd.Flags().StringVar(&opts.jsonPath, "json", "", "also write the table to this JSON file")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	return cmd
}

func run(out io.Writer, opts *options) error {
	if opts.maxLength < 1 || opts.maxLength >= mp.MaxDigits {
		return fmt.Errorf("max length %d outside [1, %d]", opts.maxLength, mp.MaxDigits-1)
	}

	p := message.NewPrinter(message.MatchLanguage("en"))
	table := make([]periodic.Class, 0, opts.maxLength)
	_, _ = p.Fprintf(out, "%6s %14s %28s %14s %28s\n", "digits", "doubles", "double sum", "repeats", "repeat sum")
	for length := 1; length <= opts.maxLength; length++ {
		c, err := periodic.Census(length)
		if err != nil {
			return err
		}
		if length <= opts.check {
			if err := check(c, opts.verbose); err != nil {
				return err
			}
		}
		table = append(table, c)
		_, _ = p.Fprintf(out, "%6d %14d %28s %14d %28s\n", c.Length, c.Doubles, c.DoubleSum, c.Repeats, c.RepeatSum)
	}

	if opts.jsonPath != "" {
		if err := writeTable(opts.jsonPath, table); err != nil {
			return err
		}
		if opts.verbose {
			log.Printf("wrote %d classes to %s", len(table), opts.jsonPath)
		}
	}
	return nil
}

// check compares a closed-form class against the range summers run over the
// whole class.
func check(c periodic.Class, verbose bool) error {
	r, err := periodic.ClassRange(c.Length)
	if err != nil {
		return err
	}
	t0 := time.Now()
	doubleSum := periodic.SumDoublesExact(r)
	repeatSum := periodic.SumRepeatsExact(r)
	doubles := periodic.CountDoubles(r)
	repeats := periodic.CountRepeats(r)
	if doubles != c.Doubles || !doubleSum.Equal(c.DoubleSum) {
		return fmt.Errorf("length %d: doubles %d (sum %s) by scan, %d (sum %s) by census",
			c.Length, doubles, doubleSum, c.Doubles, c.DoubleSum)
	}
	if repeats != c.Repeats || !repeatSum.Equal(c.RepeatSum) {
		return fmt.Errorf("length %d: repeats %d (sum %s) by scan, %d (sum %s) by census",
			c.Length, repeats, repeatSum, c.Repeats, c.RepeatSum)
	}
	if verbose {
		log.Printf("length %d checked in %v", c.Length, time.Since(t0))
	}
	return nil
}

func writeTable(path string, table []periodic.Class) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return err
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)
	txt, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return err
	}
	if _, err = f.Write(txt); err != nil {
		return err
	}
	return f.Close()
}

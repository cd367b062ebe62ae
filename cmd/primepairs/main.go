// Command primepairs runs the prime-pair pipeline over a range.
//
// The range is taken from the two positional arguments, or from an
// interactive prompt when no arguments are given:
//
//	primepairs 0 100
//	primepairs -v 0 100     # also print every triple
//
// Settings can be supplied via PRIMEPAIRS_* environment variables.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/hupe1980/primepairs"
)

func main() {
	verbose := flag.Bool("v", false, "print every triple, sorted by product")
	jsonLogs := flag.Bool("json", false, "emit JSON-formatted logs")
	flag.Parse()

	if err := run(flag.Args(), *verbose, *jsonLogs); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, verbose, jsonLogs bool) error {
	start, end, err := bounds(args)
	if err != nil {
		return err
	}

	cfg, err := primepairs.ConfigFromEnv()
	if err != nil {
		return err
	}

	optFns := cfg.Options()
	if jsonLogs {
		optFns = append(optFns, primepairs.WithLogger(primepairs.NewJSONLogger(slog.LevelInfo)))
	}

	pp := primepairs.New(optFns...)
	defer pp.Close()

	result, err := pp.Run(context.Background(), start, end)
	if err != nil {
		return err
	}

	fmt.Println(result.PairCount())

	if verbose {
		// The O(p²) result set is the expensive part; write it buffered.
		w := bufio.NewWriter(os.Stdout)
		defer w.Flush()

		for _, t := range result.Set.Sorted() {
			fmt.Fprintf(w, "%d = %d * %d\n", t.Product, t.Lesser, t.Greater)
		}
	}

	return nil
}

// bounds extracts the inclusive range from args, or prompts for it.
func bounds(args []string) (uint64, uint64, error) {
	if len(args) == 0 {
		fmt.Println("Enter range [uint64 uint64]:")

		sc := bufio.NewScanner(os.Stdin)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, 0, fmt.Errorf("read input: %w", err)
			}
			return 0, 0, fmt.Errorf("no input")
		}
		args = strings.Fields(sc.Text())
	}

	if len(args) != 2 {
		return 0, 0, fmt.Errorf("2 inputs needed: 'start' and 'end'")
	}

	start, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid start %q: %w", args[0], err)
	}
	end, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid end %q: %w", args[1], err)
	}

	return start, end, nil
}

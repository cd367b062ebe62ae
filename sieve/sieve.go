package sieve

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/primepairs/prime"
)

// Options configures a Collector.
type Options struct {
	// Parallelism bounds the number of chunks scanned concurrently.
	// Values <= 0 fall back to runtime.GOMAXPROCS(0).
	Parallelism int

	// ChunkSize is the number of candidates a single task scans.
	// Values <= 0 fall back to DefaultOptions.ChunkSize.
	ChunkSize uint64
}

// DefaultOptions are the recommended defaults.
//
// The chunk size trades scheduling overhead against load balance: chunks near
// the top of a range are more expensive than chunks near the bottom (trial
// division is O(sqrt n)), so chunks should be small enough that slow ones
// don't straggle.
var DefaultOptions = Options{
	Parallelism: 0,
	ChunkSize:   4096,
}

// Collector scans ranges for primes.
type Collector struct {
	opts Options
}

// NewCollector creates a Collector.
func NewCollector(optFns ...func(o *Options)) *Collector {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Parallelism <= 0 {
		opts.Parallelism = runtime.GOMAXPROCS(0)
	}
	if opts.ChunkSize == 0 {
		opts.ChunkSize = DefaultOptions.ChunkSize
	}

	return &Collector{opts: opts}
}

// span is an inclusive sub-range assigned to one task.
type span struct {
	lo, hi uint64
}

// Collect returns every prime in [start, end], ascending.
//
// A start greater than end yields an empty result, not an error. The only
// failure mode is context cancellation.
func (c *Collector) Collect(ctx context.Context, start, end uint64) ([]uint64, error) {
	if start > end {
		return nil, nil
	}

	spans := c.split(start, end)
	results := make([][]uint64, len(spans))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.Parallelism)

	for i, s := range spans {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = scan(s)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Restore range order: concatenation in chunk order, not completion order.
	var total int
	for _, r := range results {
		total += len(r)
	}

	primes := make([]uint64, 0, total)
	for _, r := range results {
		primes = append(primes, r...)
	}

	return primes, nil
}

// split partitions [start, end] into spans of at most ChunkSize candidates.
// The arithmetic must not overflow for end == math.MaxUint64.
func (c *Collector) split(start, end uint64) []span {
	spans := make([]span, 0, 1)

	lo := start
	for {
		hi := lo + (c.opts.ChunkSize - 1)
		if hi < lo || hi > end {
			hi = end
		}
		spans = append(spans, span{lo: lo, hi: hi})
		if hi == end {
			return spans
		}
		lo = hi + 1
	}
}

// scan collects the primes of a single span sequentially.
func scan(s span) []uint64 {
	var primes []uint64
	for n := s.lo; ; n++ {
		if prime.IsPrime(n) {
			primes = append(primes, n)
		}
		if n == s.hi {
			return primes
		}
	}
}

// Collect returns every prime in [start, end] using DefaultOptions.
func Collect(ctx context.Context, start, end uint64) ([]uint64, error) {
	return NewCollector().Collect(ctx, start, end)
}

package primepairs

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/hupe1980/primepairs/factor"
	"github.com/hupe1980/primepairs/sieve"
)

// Pipeline composes the range collector and the pair factorizer.
//
// A Pipeline is safe for concurrent use and holds a fixed worker pool for
// the pairing stage; release it with Close.
type Pipeline struct {
	opts       options
	collector  *sieve.Collector
	factorizer *factor.Factorizer
	closed     atomic.Bool
}

// New creates a Pipeline.
func New(optFns ...Option) *Pipeline {
	opts := applyOptions(optFns)

	return &Pipeline{
		opts: opts,
		collector: sieve.NewCollector(func(o *sieve.Options) {
			o.Parallelism = opts.parallelism
			if opts.chunkSize > 0 {
				o.ChunkSize = opts.chunkSize
			}
		}),
		factorizer: factor.NewFactorizer(func(o *factor.Options) {
			o.Parallelism = opts.parallelism
			o.NumShards = opts.numShards
		}),
	}
}

// CollectPrimes returns every prime in [start, end], ascending.
// A start greater than end yields an empty result, not an error.
func (p *Pipeline) CollectPrimes(ctx context.Context, start, end uint64) ([]uint64, error) {
	if p.closed.Load() {
		return nil, ErrClosed
	}

	begin := time.Now()
	primes, err := p.collector.Collect(ctx, start, end)

	p.opts.metricsCollector.RecordSieve(rangeSpan(start, end), len(primes), time.Since(begin), err)
	p.opts.logger.LogSieve(ctx, start, end, len(primes), err)

	return primes, err
}

// Factorize returns the canonical triple set for every unordered pair of
// distinct values in primes.
func (p *Pipeline) Factorize(ctx context.Context, primes []uint64) (*factor.Set, error) {
	if p.closed.Load() {
		return nil, ErrClosed
	}

	begin := time.Now()
	set, err := p.factorizer.Factorize(ctx, primes)
	if errors.Is(err, factor.ErrClosed) {
		err = ErrClosed
	}

	pairs := 0
	if set != nil {
		pairs = set.Len()
	}

	p.opts.metricsCollector.RecordFactorize(len(primes), pairs, time.Since(begin), err)
	p.opts.logger.LogFactorize(ctx, len(primes), pairs, err)

	return set, err
}

// Run executes both stages back to back and returns the combined result.
func (p *Pipeline) Run(ctx context.Context, start, end uint64) (*Result, error) {
	primes, err := p.CollectPrimes(ctx, start, end)
	if err != nil {
		return nil, err
	}

	set, err := p.Factorize(ctx, primes)
	if err != nil {
		return nil, err
	}

	return &Result{Primes: primes, Set: set}, nil
}

// Close releases the pipeline's worker pool. Idempotent.
func (p *Pipeline) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}

	p.factorizer.Close()
	return nil
}

// rangeSpan returns the number of candidates in the inclusive range,
// saturating instead of overflowing for the full uint64 domain.
func rangeSpan(start, end uint64) uint64 {
	if start > end {
		return 0
	}
	span := end - start + 1
	if span == 0 { // full domain wraps to zero
		span--
	}
	return span
}

// Result holds the output of a pipeline run.
type Result struct {
	// Primes is the ascending prime sequence of the scanned range.
	Primes []uint64

	// Set contains one canonical triple per unordered prime pair.
	Set *factor.Set
}

// PairCount returns the number of triples.
// For p primes this is always p*(p-1)/2.
func (r *Result) PairCount() int {
	return r.Set.Len()
}

// DistinctProducts returns the number of distinct pair products.
// A value below PairCount means wrapped multiplications collided.
func (r *Result) DistinctProducts() uint64 {
	return r.Set.Products().GetCardinality()
}

// Membership returns a compressed membership index over the primes.
func (r *Result) Membership() *sieve.Membership {
	return sieve.NewMembership(r.Primes)
}

// CollectPrimes returns every prime in [start, end] using default settings.
func CollectPrimes(ctx context.Context, start, end uint64) ([]uint64, error) {
	return sieve.Collect(ctx, start, end)
}

// Factorize enumerates the canonical triples of primes using default settings.
func Factorize(ctx context.Context, primes []uint64) (*factor.Set, error) {
	return factor.Factorize(ctx, primes)
}

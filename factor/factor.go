package factor

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"github.com/hupe1980/primepairs/internal/pool"
)

// ErrClosed is returned when a Factorizer is used after Close.
var ErrClosed = errors.New("factor: factorizer closed")

// Triple is a canonical factorization of a product of two distinct primes.
//
// Invariant: Lesser < Greater and Product == Lesser*Greater under wrapping
// uint64 multiplication. Overflow is not guarded; callers that need exact
// products must bound their inputs below 2^32.
type Triple struct {
	Product uint64
	Lesser  uint64
	Greater uint64
}

// Options configures a Factorizer.
type Options struct {
	// Parallelism is the worker count for the outer pair loop.
	// Values <= 0 fall back to runtime.GOMAXPROCS(0).
	Parallelism int

	// NumShards is the shard count of the result set.
	// Values <= 0 fall back to DefaultNumShards.
	NumShards int
}

// DefaultOptions are the recommended defaults.
var DefaultOptions = Options{
	Parallelism: 0,
	NumShards:   DefaultNumShards,
}

// Factorizer enumerates canonical prime-pair triples. It owns a fixed worker
// pool that is reused across calls; release it with Close.
type Factorizer struct {
	opts Options
	pool *pool.Pool
}

// NewFactorizer creates a Factorizer.
func NewFactorizer(optFns ...func(o *Options)) *Factorizer {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Parallelism <= 0 {
		opts.Parallelism = runtime.GOMAXPROCS(0)
	}

	return &Factorizer{
		opts: opts,
		pool: pool.New(opts.Parallelism),
	}
}

// Factorize returns the set of canonical triples for every unordered pair of
// distinct values in primes.
//
// Each index i spawns one task that pairs primes[i] with every later entry,
// so each unordered pair is visited exactly once. The input must not contain
// repeated values; it does not have to be sorted. Inputs shorter than two
// yield an empty set. Fails only on context cancellation or after Close.
func (f *Factorizer) Factorize(ctx context.Context, primes []uint64) (*Set, error) {
	set := NewSet(f.opts.NumShards)
	if len(primes) < 2 {
		return set, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < len(primes)-1; i++ {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}

		a, rest := primes[i], primes[i+1:]

		wg.Add(1)
		err := f.pool.Submit(ctx, func() {
			defer wg.Done()
			pair(set, a, rest)
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			if errors.Is(err, pool.ErrClosed) {
				return nil, ErrClosed
			}
			return nil, err
		}
	}

	wg.Wait()
	return set, nil
}

// Close shuts down the worker pool. Idempotent.
func (f *Factorizer) Close() {
	f.pool.Close()
}

// pair inserts the canonical triple of a with every element of rest.
func pair(set *Set, a uint64, rest []uint64) {
	for _, b := range rest {
		lesser, greater := a, b
		if greater < lesser {
			lesser, greater = greater, lesser
		}
		set.Add(Triple{
			Product: lesser * greater,
			Lesser:  lesser,
			Greater: greater,
		})
	}
}

// Factorize enumerates the triples of primes using DefaultOptions.
func Factorize(ctx context.Context, primes []uint64) (*Set, error) {
	f := NewFactorizer()
	defer f.Close()

	return f.Factorize(ctx, primes)
}

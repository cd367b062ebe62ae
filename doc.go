// Package primepairs computes the primes inside a bounded range and
// enumerates every unordered pair of distinct primes with its product.
//
// # Quick Start
//
//	ctx := context.Background()
//	pp := primepairs.New()
//	defer pp.Close()
//
//	result, _ := pp.Run(ctx, 0, 100)
//	fmt.Println(result.PairCount()) // 300
//
// The two stages are also exposed individually:
//
//	primes, _ := pp.CollectPrimes(ctx, 0, 100)       // [2 3 5 7 ... 97]
//	set, _ := pp.Factorize(ctx, primes)              // canonical triples
//
// # Pipeline
//
// Stage one scans the inclusive range concurrently in chunks and keeps the
// values the primality oracle accepts, restoring ascending order before
// handing off. Stage two pairs every prime with every larger prime across a
// fixed worker pool and collects the canonical (product, lesser, greater)
// triples into a sharded uniqueness-enforcing set. The stages run back to
// back with a synchronous barrier; no mutable state is shared between them.
//
// # Boundaries
//
// The numeric core is total: any (start, end) input terminates with a result,
// and start > end simply yields an empty one. Products are wrapping uint64
// multiplications; overflow is an accepted boundary condition, not an error.
// Result.DistinctProducts dropping below PairCount is the observable symptom
// of wrapped products colliding.
//
// # Key Features
//
//   - Exact integer square root in the oracle (no float truncation hazard)
//   - Chunked errgroup fan-out with deterministic output order
//   - Fixed worker pool for the O(p²) pairing stage
//   - Roaring-bitmap prime membership and distinct-product indexes
//   - Structured logging (slog), pluggable metrics, env-based configuration
package primepairs

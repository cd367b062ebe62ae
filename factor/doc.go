// Package factor enumerates the unordered pairs of a prime sequence together
// with their products.
//
// Every unordered pair of distinct primes {a, b} is represented by exactly
// one canonical Triple (a*b, min, max). The enumeration is O(p²) in both time
// and memory for p primes, so the outer loop fans out across a fixed worker
// pool and the triples land in a hash-sharded set to keep insert contention
// low.
package factor

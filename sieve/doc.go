// Package sieve collects the primes inside an inclusive uint64 range.
//
// The range is split into fixed-size chunks that are scanned concurrently,
// each chunk testing its candidates with the prime package's oracle. Chunk
// results are kept in per-chunk slots and concatenated in chunk order, so the
// output is always ascending by value no matter which chunk finishes first.
package sieve

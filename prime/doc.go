// Package prime implements the primality oracle used by the pipeline.
//
// The oracle is trial division: after the small-number base cases, candidate
// divisors of the form 6k±1 are tested up to the exact integer square root of
// the input. Every function in this package is pure and safe to call from any
// number of goroutines.
package prime

package prime

import "math"

// IsPrime reports whether n is prime.
//
// Base cases cover n < 5; everything else is trial division against divisors
// of the form 6k±1 up to Isqrt(n). Any integer > 3 that is not divisible by
// 2 or 3 is congruent to ±1 mod 6, so only those residues need testing.
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	if n == 2 || n == 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}

	// If n = a*b with a <= b, then a <= sqrt(n); no divisor up to the root
	// means no divisor at all.
	limit := Isqrt(n)
	for i := uint64(5); i <= limit; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}

	return true
}

// Isqrt returns floor(sqrt(n)) exactly.
//
// math.Sqrt only carries 53 bits of mantissa, so for large n the float result
// can land one off near perfect squares. The float value is used as a seed
// and corrected with integer arithmetic; the divisions avoid overflowing r*r.
func Isqrt(n uint64) uint64 {
	if n == 0 {
		return 0
	}

	r := uint64(math.Sqrt(float64(n)))
	for r > 0 && r > n/r {
		r--
	}
	for r+1 != 0 && r+1 <= n/(r+1) {
		r++
	}

	return r
}

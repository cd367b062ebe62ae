package prime

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPrime(t *testing.T) {
	t.Run("PrimesBelow100", func(t *testing.T) {
		primes := []uint64{
			2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47,
			53, 59, 61, 67, 71, 73, 79, 83, 89, 97,
		}
		for _, n := range primes {
			assert.True(t, IsPrime(n), "expected %d to be prime", n)
		}
	})

	t.Run("CompositesBelow100", func(t *testing.T) {
		composites := []uint64{
			4, 6, 8, 9, 10, 12, 15, 21, 25, 27, 33, 35, 39, 45, 49,
			51, 55, 57, 63, 65, 77, 81, 87, 91, 95,
		}
		for _, n := range composites {
			assert.False(t, IsPrime(n), "expected %d to be composite", n)
		}
	})

	t.Run("SmallNumbers", func(t *testing.T) {
		assert.False(t, IsPrime(0))
		assert.False(t, IsPrime(1))
		assert.True(t, IsPrime(2))
		assert.True(t, IsPrime(3))
	})

	t.Run("PrimeSquares", func(t *testing.T) {
		// The divisor equal to the square root must be tested; these fail
		// if the root is computed one too low.
		for _, p := range []uint64{5, 7, 11, 13, 101, 3571, 65521} {
			assert.False(t, IsPrime(p*p), "expected %d^2 to be composite", p)
		}
	})

	t.Run("LargerValues", func(t *testing.T) {
		assert.True(t, IsPrime(2147483647)) // 2^31 - 1, Mersenne prime
		assert.True(t, IsPrime(1000000007))
		assert.False(t, IsPrime(1000000007*2))
		assert.False(t, IsPrime(uint64(4294967295))) // 2^32 - 1 = 3*5*17*257*65537
	})
}

func TestIsqrt(t *testing.T) {
	t.Run("Exact", func(t *testing.T) {
		cases := map[uint64]uint64{
			0:  0,
			1:  1,
			2:  1,
			3:  1,
			4:  2,
			8:  2,
			9:  3,
			15: 3,
			16: 4,
			24: 4,
			25: 5,
		}
		for n, want := range cases {
			assert.Equal(t, want, Isqrt(n), "Isqrt(%d)", n)
		}
	})

	t.Run("PerfectSquareBoundaries", func(t *testing.T) {
		for _, r := range []uint64{3, 1000003, 4294967295, 1 << 31} {
			sq := r * r
			assert.Equal(t, r, Isqrt(sq), "Isqrt(%d^2)", r)
			assert.Equal(t, r-1, Isqrt(sq-1), "Isqrt(%d^2-1)", r)
			if sq+1 != 0 {
				assert.Equal(t, r, Isqrt(sq+1), "Isqrt(%d^2+1)", r)
			}
		}
	})

	t.Run("MaxUint64", func(t *testing.T) {
		// floor(sqrt(2^64-1)) = 2^32 - 1; the float seed rounds up here.
		assert.Equal(t, uint64(4294967295), Isqrt(math.MaxUint64))
	})
}

func BenchmarkIsPrime(b *testing.B) {
	for i := 0; i < b.N; i++ {
		IsPrime(1000000007)
	}
}

package primepairs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/primepairs/factor"
)

func TestPipeline(t *testing.T) {
	ctx := context.Background()

	t.Run("RunZeroTo100", func(t *testing.T) {
		pp := New()
		defer pp.Close()

		result, err := pp.Run(ctx, 0, 100)
		require.NoError(t, err)

		require.Len(t, result.Primes, 25)
		assert.Equal(t, uint64(2), result.Primes[0])
		assert.Equal(t, uint64(97), result.Primes[24])

		assert.Equal(t, 25*24/2, result.PairCount())
		assert.Equal(t, uint64(25*24/2), result.DistinctProducts())

		m := result.Membership()
		assert.True(t, m.Contains(89))
		assert.False(t, m.Contains(91)) // 7*13
	})

	t.Run("EmptyRange", func(t *testing.T) {
		pp := New()
		defer pp.Close()

		result, err := pp.Run(ctx, 10, 5)
		require.NoError(t, err)
		assert.Empty(t, result.Primes)
		assert.Equal(t, 0, result.PairCount())
	})

	t.Run("StagesIndividually", func(t *testing.T) {
		pp := New(WithParallelism(2), WithChunkSize(16), WithNumShards(4))
		defer pp.Close()

		primes, err := pp.CollectPrimes(ctx, 0, 10)
		require.NoError(t, err)
		assert.Equal(t, []uint64{2, 3, 5, 7}, primes)

		set, err := pp.Factorize(ctx, primes)
		require.NoError(t, err)

		want := []factor.Triple{
			{Product: 6, Lesser: 2, Greater: 3},
			{Product: 10, Lesser: 2, Greater: 5},
			{Product: 14, Lesser: 2, Greater: 7},
			{Product: 15, Lesser: 3, Greater: 5},
			{Product: 21, Lesser: 3, Greater: 7},
			{Product: 35, Lesser: 5, Greater: 7},
		}
		assert.Equal(t, want, set.Sorted())
	})

	t.Run("UseAfterClose", func(t *testing.T) {
		pp := New()
		require.NoError(t, pp.Close())
		require.NoError(t, pp.Close()) // idempotent

		_, err := pp.Run(ctx, 0, 10)
		assert.ErrorIs(t, err, ErrClosed)

		_, err = pp.CollectPrimes(ctx, 0, 10)
		assert.ErrorIs(t, err, ErrClosed)

		_, err = pp.Factorize(ctx, []uint64{2, 3})
		assert.ErrorIs(t, err, ErrClosed)
	})

	t.Run("Metrics", func(t *testing.T) {
		metrics := &BasicMetricsCollector{}
		pp := New(WithMetricsCollector(metrics))
		defer pp.Close()

		_, err := pp.Run(ctx, 0, 100)
		require.NoError(t, err)

		stats := metrics.GetStats()
		assert.Equal(t, int64(1), stats.SieveCount)
		assert.Equal(t, int64(101), stats.SieveCandidates)
		assert.Equal(t, int64(25), stats.SievePrimes)
		assert.Equal(t, int64(1), stats.FactorizeCount)
		assert.Equal(t, int64(300), stats.FactorizePairs)
		assert.Zero(t, stats.SieveErrors)
		assert.Zero(t, stats.FactorizeErrors)
	})

	t.Run("PackageLevelFunctions", func(t *testing.T) {
		primes, err := CollectPrimes(ctx, 0, 30)
		require.NoError(t, err)
		assert.Equal(t, []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, primes)

		set, err := Factorize(ctx, primes)
		require.NoError(t, err)
		assert.Equal(t, 10*9/2, set.Len())
	})
}

func TestRangeSpan(t *testing.T) {
	assert.Equal(t, uint64(0), rangeSpan(10, 5))
	assert.Equal(t, uint64(1), rangeSpan(7, 7))
	assert.Equal(t, uint64(101), rangeSpan(0, 100))
	assert.Equal(t, uint64(1<<64-1), rangeSpan(0, 1<<64-1))
}

func TestConfig(t *testing.T) {
	t.Run("FromEnv", func(t *testing.T) {
		t.Setenv("PRIMEPAIRS_PARALLELISM", "4")
		t.Setenv("PRIMEPAIRS_CHUNK_SIZE", "1024")
		t.Setenv("PRIMEPAIRS_NUM_SHARDS", "8")
		t.Setenv("PRIMEPAIRS_LOG_LEVEL", "debug")

		cfg, err := ConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, 4, cfg.Parallelism)
		assert.Equal(t, uint64(1024), cfg.ChunkSize)
		assert.Equal(t, 8, cfg.NumShards)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Len(t, cfg.Options(), 4)
	})

	t.Run("Defaults", func(t *testing.T) {
		cfg := Config{}
		assert.Empty(t, cfg.Options())
	})

	t.Run("Invalid", func(t *testing.T) {
		t.Setenv("PRIMEPAIRS_PARALLELISM", "not-a-number")

		_, err := ConfigFromEnv()
		assert.Error(t, err)
	})
}

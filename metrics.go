package primepairs

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordSieve is called after each range collection.
	// span is the number of candidates scanned, found the number of primes,
	// duration the total time taken, err is nil if successful.
	RecordSieve(span uint64, found int, duration time.Duration, err error)

	// RecordFactorize is called after each pair enumeration.
	// primes is the input length, pairs the number of triples produced,
	// duration the total time taken, err is nil if successful.
	RecordFactorize(primes, pairs int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSieve(uint64, int, time.Duration, error)  {}
func (NoopMetricsCollector) RecordFactorize(int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SieveCount          atomic.Int64
	SieveErrors         atomic.Int64
	SieveCandidates     atomic.Int64
	SievePrimes         atomic.Int64
	SieveTotalNanos     atomic.Int64
	FactorizeCount      atomic.Int64
	FactorizeErrors     atomic.Int64
	FactorizePairs      atomic.Int64
	FactorizeTotalNanos atomic.Int64
}

// RecordSieve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSieve(span uint64, found int, duration time.Duration, err error) {
	b.SieveCount.Add(1)
	b.SieveCandidates.Add(int64(span))
	b.SieveTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SieveErrors.Add(1)
	} else {
		b.SievePrimes.Add(int64(found))
	}
}

// RecordFactorize implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFactorize(primes, pairs int, duration time.Duration, err error) {
	b.FactorizeCount.Add(1)
	b.FactorizeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.FactorizeErrors.Add(1)
	} else {
		b.FactorizePairs.Add(int64(pairs))
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SieveCount:        b.SieveCount.Load(),
		SieveErrors:       b.SieveErrors.Load(),
		SieveCandidates:   b.SieveCandidates.Load(),
		SievePrimes:       b.SievePrimes.Load(),
		SieveAvgNanos:     avgNanos(b.SieveTotalNanos.Load(), b.SieveCount.Load()),
		FactorizeCount:    b.FactorizeCount.Load(),
		FactorizeErrors:   b.FactorizeErrors.Load(),
		FactorizePairs:    b.FactorizePairs.Load(),
		FactorizeAvgNanos: avgNanos(b.FactorizeTotalNanos.Load(), b.FactorizeCount.Load()),
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SieveCount        int64
	SieveErrors       int64
	SieveCandidates   int64
	SievePrimes       int64
	SieveAvgNanos     int64
	FactorizeCount    int64
	FactorizeErrors   int64
	FactorizePairs    int64
	FactorizeAvgNanos int64
}

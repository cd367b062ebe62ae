package sieve

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Membership is a compressed membership index over a collected prime
// sequence. It wraps a 64-bit Roaring Bitmap, which stays small because
// primes cluster densely in low ranges.
//
// A Membership is immutable after construction and safe for concurrent reads.
type Membership struct {
	rb *roaring64.Bitmap
}

// NewMembership builds a Membership from a prime sequence.
func NewMembership(primes []uint64) *Membership {
	rb := roaring64.New()
	rb.AddMany(primes)

	return &Membership{rb: rb}
}

// Contains checks if n is in the index.
func (m *Membership) Contains(n uint64) bool {
	return m.rb.Contains(n)
}

// Cardinality returns the number of primes in the index.
func (m *Membership) Cardinality() uint64 {
	return m.rb.GetCardinality()
}

// IsEmpty returns true if the index is empty.
func (m *Membership) IsEmpty() bool {
	return m.rb.IsEmpty()
}

// Min returns the smallest prime in the index. The index must not be empty.
func (m *Membership) Min() uint64 {
	return m.rb.Minimum()
}

// Max returns the largest prime in the index. The index must not be empty.
func (m *Membership) Max() uint64 {
	return m.rb.Maximum()
}

// Iterator returns an ascending iterator over the index.
func (m *Membership) Iterator() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		it := m.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// GetSizeInBytes returns the in-memory size of the index in bytes.
func (m *Membership) GetSizeInBytes() uint64 {
	return m.rb.GetSizeInBytes()
}

package factor

import (
	"encoding/binary"
	"iter"
	"sort"
	"sync"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/spaolacci/murmur3"
)

// DefaultNumShards is the shard count used when none is configured.
const DefaultNumShards = 64

// Set is a uniqueness-enforcing container of triples.
//
// Uniqueness is keyed on the full triple, so two different factor pairs that
// wrap to the same product are both retained. Entries are distributed across
// shards by triple hash; each shard has its own lock, which keeps concurrent
// inserts from the factorizer's workers cheap.
//
// Given canonical triples and an input of distinct primes, duplicates cannot
// actually occur; the set semantics act as a correctness safeguard rather
// than a load-bearing dedup mechanism.
type Set struct {
	shards []setShard
}

type setShard struct {
	mu       sync.Mutex
	triples  map[Triple]struct{}
	products *roaring64.Bitmap
}

// NewSet creates an empty Set with numShards shards.
// If numShards <= 0, DefaultNumShards is used.
func NewSet(numShards int) *Set {
	if numShards <= 0 {
		numShards = DefaultNumShards
	}

	s := &Set{
		shards: make([]setShard, numShards),
	}
	for i := range s.shards {
		s.shards[i].triples = make(map[Triple]struct{})
		s.shards[i].products = roaring64.New()
	}

	return s
}

// shard returns the shard responsible for t.
func (s *Set) shard(t Triple) *setShard {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:8], t.Product)
	binary.LittleEndian.PutUint64(buf[8:16], t.Lesser)
	binary.LittleEndian.PutUint64(buf[16:24], t.Greater)

	idx := murmur3.Sum64(buf[:]) % uint64(len(s.shards))
	return &s.shards[idx]
}

// Add inserts t and reports whether it was not already present.
// Safe for concurrent use.
func (s *Set) Add(t Triple) bool {
	sh := s.shard(t)

	sh.mu.Lock()
	defer sh.mu.Unlock()

	if _, ok := sh.triples[t]; ok {
		return false
	}
	sh.triples[t] = struct{}{}
	sh.products.Add(t.Product)

	return true
}

// Contains checks if t is in the set.
func (s *Set) Contains(t Triple) bool {
	sh := s.shard(t)

	sh.mu.Lock()
	defer sh.mu.Unlock()

	_, ok := sh.triples[t]
	return ok
}

// Len returns the number of triples in the set.
func (s *Set) Len() int {
	var n int
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mu.Lock()
		n += len(sh.triples)
		sh.mu.Unlock()
	}
	return n
}

// Triples returns an iterator over the set. Iteration order is unspecified.
func (s *Set) Triples() iter.Seq[Triple] {
	return func(yield func(Triple) bool) {
		for i := range s.shards {
			sh := &s.shards[i]
			sh.mu.Lock()
			for t := range sh.triples {
				if !yield(t) {
					sh.mu.Unlock()
					return
				}
			}
			sh.mu.Unlock()
		}
	}
}

// Sorted returns the triples ordered by product, then lesser factor.
func (s *Set) Sorted() []Triple {
	triples := make([]Triple, 0, s.Len())
	for t := range s.Triples() {
		triples = append(triples, t)
	}

	sort.Slice(triples, func(i, j int) bool {
		if triples[i].Product != triples[j].Product {
			return triples[i].Product < triples[j].Product
		}
		return triples[i].Lesser < triples[j].Lesser
	})

	return triples
}

// Products returns the set of distinct products as a 64-bit Roaring Bitmap.
//
// For in-bounds inputs the cardinality always equals Len (a product of two
// primes has a single unordered factorization); a smaller cardinality means
// wrapped multiplications collided.
func (s *Set) Products() *roaring64.Bitmap {
	out := roaring64.New()
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mu.Lock()
		out.Or(sh.products)
		sh.mu.Unlock()
	}
	return out
}

package dictionary

import (
	"cmp"
	"hash/maphash"
)

type entry[K, V any] struct {
	key   K
	value V
}

// HashTable is a separate-chaining hash table. It never grows: it retains the
// capacity it was initialized with and Add fails once that many entries are
// stored. Keys iterate in ascending order, sorted on every Keys call.
type HashTable[K comparable, V any] struct {
	buckets []list[entry[K, V]]

	maxSize int
	size    int
	mods    modCounter

	hashFunc HashFunc[K]
	compare  func(a, b K) int
	equal    func(a, b V) bool
}

var _ Dictionary[string, int] = (*HashTable[string, int])(nil)

type Option[K comparable, V any] func(ht *HashTable[K, V])

// Override default hash function.
func WithHashFunc[K comparable, V any](f HashFunc[K]) Option[K, V] {
	return func(ht *HashTable[K, V]) {
		ht.hashFunc = f
	}
}

// Returns a new hash table holding at most capacity entries.
func NewHashTable[K cmp.Ordered, V comparable](capacity int, opts ...Option[K, V]) *HashTable[K, V] {
	return NewHashTableFunc(capacity, cmp.Compare[K], equal[V], opts...)
}

// Returns a new hash table holding at most capacity entries, with keys
// ordered by compare and values matched by equal.
//
// Buckets are chosen by the hash function, which defaults to hashing with ==.
// Keys for which compare returns 0 must hash equally: a compare looser than
// == (case-insensitive, say) needs a matching WithHashFunc, otherwise equal
// keys may land in different buckets and both be stored.
func NewHashTableFunc[K comparable, V any](
	capacity int,
	compare func(a, b K) int,
	equal func(a, b V) bool,
	opts ...Option[K, V],
) *HashTable[K, V] {
	ht := &HashTable[K, V]{
		buckets: make([]list[entry[K, V]], TableSizeFor(capacity)),
		maxSize: max(capacity, 0),
		compare: compare,
		equal:   equal,
	}

	for _, opt := range opts {
		opt(ht)
	}

	if ht.hashFunc == nil {
		ht.hashFunc = MakeDefaultHashFunc[K](maphash.MakeSeed())
	}

	return ht
}

func (ht *HashTable[K, V]) Capacity() int {
	return ht.maxSize
}

func (ht *HashTable[K, V]) TableSize() int {
	return len(ht.buckets)
}

func (ht *HashTable[K, V]) bucket(key K) *list[entry[K, V]] {
	return &ht.buckets[BucketIndex(ht.hashFunc(key), len(ht.buckets))]
}

func (ht *HashTable[K, V]) matchKey(key K) func(entry[K, V]) bool {
	return func(e entry[K, V]) bool {
		return ht.compare(key, e.key) == 0
	}
}

func (ht *HashTable[K, V]) Contains(key K) bool {
	return ht.bucket(key).contains(ht.matchKey(key))
}

// Add prepends the pair to its bucket chain.
// Returns false if the table is full or the key is already stored.
func (ht *HashTable[K, V]) Add(key K, value V) bool {
	if ht.IsFull() {
		return false
	}

	b := ht.bucket(key)
	if b.contains(ht.matchKey(key)) {
		return false
	}

	b.addFirst(entry[K, V]{key: key, value: value})
	ht.size++
	ht.mods.bump()

	return true
}

func (ht *HashTable[K, V]) Delete(key K) bool {
	if !ht.bucket(key).remove(ht.matchKey(key)) {
		return false
	}

	ht.size--
	ht.mods.bump()

	return true
}

func (ht *HashTable[K, V]) GetValue(key K) (V, bool) {
	e, ok := ht.bucket(key).find(ht.matchKey(key))

	return e.value, ok
}

// GetKey scans buckets in index order and each chain from its head,
// returning the first key whose value matches.
func (ht *HashTable[K, V]) GetKey(value V) (K, bool) {
	for i := range ht.buckets {
		for e := range ht.buckets[i].all() {
			if ht.equal(value, e.value) {
				return e.key, true
			}
		}
	}

	var zero K
	return zero, false
}

func (ht *HashTable[K, V]) Size() int {
	return ht.size
}

func (ht *HashTable[K, V]) IsEmpty() bool {
	return ht.size == 0
}

func (ht *HashTable[K, V]) IsFull() bool {
	return ht.size == ht.maxSize
}

func (ht *HashTable[K, V]) Clear() {
	for i := range ht.buckets {
		ht.buckets[i].makeEmpty()
	}

	ht.size = 0
	ht.mods.reset()
}

func (ht *HashTable[K, V]) sortedEntries() []entry[K, V] {
	entries := make([]entry[K, V], 0, ht.size)
	for i := range ht.buckets {
		for e := range ht.buckets[i].all() {
			entries = append(entries, e)
		}
	}

	shellSort(entries, func(a, b entry[K, V]) int {
		return ht.compare(a.key, b.key)
	})

	return entries
}

func (ht *HashTable[K, V]) Keys() Iterator[K] {
	entries := ht.sortedEntries()

	keys := make([]K, len(entries))
	for i, e := range entries {
		keys[i] = e.key
	}

	return newSliceIterator(keys, &ht.mods)
}

func (ht *HashTable[K, V]) Values() Iterator[V] {
	return &valueIterator[K, V]{keys: ht.Keys(), lookup: ht.GetValue}
}

func (ht *HashTable[K, V]) Stats() Stats {
	st := Stats{
		Size:      ht.size,
		Capacity:  ht.maxSize,
		TableSize: len(ht.buckets),
	}

	for i := range ht.buckets {
		n := ht.buckets[i].len()
		if n > 0 {
			st.UsedBuckets++
		}

		st.LongestChain = max(st.LongestChain, n)
	}

	st.LoadFactor = float32(ht.size) / float32(len(ht.buckets))

	return st
}

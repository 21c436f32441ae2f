package dictionary

import "cmp"

// Set is a fixed-capacity key set on top of HashTable. It doesn't store
// values, only keys. Like the table it never grows.
type Set[K cmp.Ordered] struct {
	table *HashTable[K, struct{}]
}

func NewSet[K cmp.Ordered](capacity int, opts ...Option[K, struct{}]) *Set[K] {
	return &Set[K]{table: NewHashTable(capacity, opts...)}
}

func (s *Set[K]) Has(key K) bool {
	return s.table.Contains(key)
}

// Puts a key in the set.
// Returns whether the key is new and whether the set is full.
func (s *Set[K]) Put(key K) (bool, bool) {
	if s.table.IsFull() {
		return false, true
	}

	return s.table.Add(key, struct{}{}), false
}

func (s *Set[K]) Delete(key K) bool {
	return s.table.Delete(key)
}

func (s *Set[K]) Len() int {
	return s.table.Size()
}

func (s *Set[K]) Reset() {
	s.table.Clear()
}

// Keys returns the members in ascending order.
func (s *Set[K]) Keys() []K {
	keys, _ := Collect(s.table.Keys())
	return keys
}

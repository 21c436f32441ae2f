package dictionary

import "hash/maphash"

type HashFunc[K comparable] func(K) uint64

func MakeDefaultHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// BucketIndex maps a hash onto one of tableSize buckets.
// The sign bit of the low 32 bits is cleared first, so the index never
// depends on whether the hash was produced as a signed value.
func BucketIndex(hash uint64, tableSize int) int {
	return int((hash & 0x7FFFFFFF) % uint64(tableSize))
}

// Package dictionary provides a unique-key associative container with three
// interchangeable implementations: a fixed-capacity separate-chaining hash
// table, an unbalanced binary search tree and a red-black tree adapter.
//
// None of the types are safe for concurrent use.
package dictionary

import (
	"cmp"
	"strings"

	"github.com/pkg/errors"
)

// Dictionary is the contract shared by every implementation.
// Keys are unique: Add never overwrites an existing entry.
type Dictionary[K, V any] interface {
	// Contains reports whether an entry with the key is stored.
	Contains(key K) bool
	// Add inserts the pair if the key is absent and the dictionary is not full.
	Add(key K, value V) bool
	// Delete removes the entry with the key, if any.
	Delete(key K) bool
	// GetValue returns the value stored under the key.
	GetValue(key K) (V, bool)
	// GetKey returns a key whose value equals the given one. Which key wins
	// when several values are equal depends on the implementation.
	GetKey(value V) (K, bool)

	Size() int
	IsEmpty() bool
	IsFull() bool
	Clear()

	// Keys returns a fresh one-shot iterator over the keys in ascending order.
	Keys() Iterator[K]
	// Values returns a fresh one-shot iterator over the values, ordered by key.
	Values() Iterator[V]
}

// Kind selects a Dictionary implementation.
type Kind int

const (
	KindHashTable Kind = iota
	KindBinarySearchTree
	KindBalancedTree
)

var ErrUnknownKind = errors.New("unknown dictionary kind")

func (k Kind) String() string {
	switch k {
	case KindHashTable:
		return "hashtable"
	case KindBinarySearchTree:
		return "bst"
	case KindBalancedTree:
		return "balanced"
	default:
		return "unknown"
	}
}

// ParseKind parses the String form of a Kind, case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hashtable", "hash":
		return KindHashTable, nil
	case "bst", "binarysearchtree":
		return KindBinarySearchTree, nil
	case "balanced", "redblack", "rbtree":
		return KindBalancedTree, nil
	}

	return 0, errors.Wrapf(ErrUnknownKind, "parse %q", s)
}

// Returns a new dictionary of the given kind for naturally ordered keys.
// The capacity is only used by the hash table.
func New[K cmp.Ordered, V comparable](kind Kind, capacity int) (Dictionary[K, V], error) {
	return NewFunc(kind, capacity, cmp.Compare[K], equal[V])
}

// Returns a new dictionary of the given kind ordering keys with compare and
// matching values with equal. The hash table hashes keys with ==, so compare
// must return 0 only for keys that are ==.
func NewFunc[K comparable, V any](
	kind Kind,
	capacity int,
	compare func(a, b K) int,
	equal func(a, b V) bool,
) (Dictionary[K, V], error) {
	switch kind {
	case KindHashTable:
		return NewHashTableFunc(capacity, compare, equal), nil
	case KindBinarySearchTree:
		return NewBinarySearchTreeFunc(compare, equal), nil
	case KindBalancedTree:
		return NewBalancedTreeFunc(compare, equal), nil
	}

	return nil, errors.Wrapf(ErrUnknownKind, "kind %d", int(kind))
}

func equal[V comparable](a, b V) bool {
	return a == b
}

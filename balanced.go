package dictionary

import (
	"cmp"

	"github.com/emirpasic/gods/v2/trees/redblacktree"
)

// BalancedTree adapts a red-black tree to the Dictionary contract.
type BalancedTree[K comparable, V any] struct {
	tree *redblacktree.Tree[K, V]
	mods modCounter

	equal func(a, b V) bool
}

var _ Dictionary[string, int] = (*BalancedTree[string, int])(nil)

func NewBalancedTree[K cmp.Ordered, V comparable]() *BalancedTree[K, V] {
	return NewBalancedTreeFunc(cmp.Compare[K], equal[V])
}

func NewBalancedTreeFunc[K comparable, V any](compare func(a, b K) int, equal func(a, b V) bool) *BalancedTree[K, V] {
	return &BalancedTree[K, V]{
		tree:  redblacktree.NewWith[K, V](compare),
		equal: equal,
	}
}

func (bt *BalancedTree[K, V]) Contains(key K) bool {
	_, ok := bt.tree.Get(key)
	return ok
}

func (bt *BalancedTree[K, V]) Add(key K, value V) bool {
	if bt.Contains(key) {
		return false
	}

	bt.tree.Put(key, value)
	bt.mods.bump()

	return true
}

func (bt *BalancedTree[K, V]) Delete(key K) bool {
	if !bt.Contains(key) {
		return false
	}

	bt.tree.Remove(key)
	bt.mods.bump()

	return true
}

func (bt *BalancedTree[K, V]) GetValue(key K) (V, bool) {
	return bt.tree.Get(key)
}

// GetKey scans in ascending key order and returns the first match.
func (bt *BalancedTree[K, V]) GetKey(value V) (K, bool) {
	it := bt.tree.Iterator()
	for it.Next() {
		if bt.equal(value, it.Value()) {
			return it.Key(), true
		}
	}

	var zero K
	return zero, false
}

func (bt *BalancedTree[K, V]) Size() int {
	return bt.tree.Size()
}

func (bt *BalancedTree[K, V]) IsEmpty() bool {
	return bt.tree.Empty()
}

func (bt *BalancedTree[K, V]) IsFull() bool {
	return false
}

func (bt *BalancedTree[K, V]) Clear() {
	bt.tree.Clear()
	bt.mods.reset()
}

func (bt *BalancedTree[K, V]) Keys() Iterator[K] {
	return newTreeIterator(bt, func(k K, _ V) K { return k })
}

func (bt *BalancedTree[K, V]) Values() Iterator[V] {
	return newTreeIterator(bt, func(_ K, v V) V { return v })
}

// treeIterator walks the red-black tree lazily, one step ahead of Next.
type treeIterator[T any] struct {
	advance func() (T, bool)

	peeked bool
	more   bool
	next   T

	live     *modCounter
	snapshot modCounter
}

func newTreeIterator[K comparable, V, T any](bt *BalancedTree[K, V], pick func(K, V) T) *treeIterator[T] {
	it := bt.tree.Iterator()

	return &treeIterator[T]{
		advance: func() (T, bool) {
			if !it.Next() {
				var zero T
				return zero, false
			}

			return pick(it.Key(), it.Value()), true
		},
		live:     &bt.mods,
		snapshot: bt.mods,
	}
}

func (it *treeIterator[T]) HasNext() (bool, error) {
	if *it.live != it.snapshot {
		return false, ErrConcurrentModification
	}

	if !it.peeked {
		it.next, it.more = it.advance()
		it.peeked = true
	}

	return it.more, nil
}

func (it *treeIterator[T]) Next() (T, error) {
	var zero T

	ok, err := it.HasNext()
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, ErrNoSuchElement
	}

	v := it.next
	it.next, it.peeked = zero, false

	return v, nil
}

func (it *treeIterator[T]) Remove() error {
	return ErrUnsupportedOperation
}

package dictionary

import "cmp"

type treeNode[K, V any] struct {
	key         K
	value       V
	left, right *treeNode[K, V]
}

// BinarySearchTree is an unbalanced binary search tree. Each node owns its
// subtrees; there are no parent links.
type BinarySearchTree[K, V any] struct {
	root *treeNode[K, V]
	size int
	mods modCounter

	compare func(a, b K) int
	equal   func(a, b V) bool
}

var _ Dictionary[string, int] = (*BinarySearchTree[string, int])(nil)

func NewBinarySearchTree[K cmp.Ordered, V comparable]() *BinarySearchTree[K, V] {
	return NewBinarySearchTreeFunc(cmp.Compare[K], equal[V])
}

func NewBinarySearchTreeFunc[K, V any](compare func(a, b K) int, equal func(a, b V) bool) *BinarySearchTree[K, V] {
	return &BinarySearchTree[K, V]{compare: compare, equal: equal}
}

func (t *BinarySearchTree[K, V]) Add(key K, value V) bool {
	link := &t.root
	for *link != nil {
		c := t.compare(key, (*link).key)
		switch {
		case c < 0:
			link = &(*link).left
		case c > 0:
			link = &(*link).right
		default:
			return false
		}
	}

	*link = &treeNode[K, V]{key: key, value: value}
	t.size++
	t.mods.bump()

	return true
}

func (t *BinarySearchTree[K, V]) find(key K) *treeNode[K, V] {
	cur := t.root
	for cur != nil {
		c := t.compare(key, cur.key)
		switch {
		case c < 0:
			cur = cur.left
		case c > 0:
			cur = cur.right
		default:
			return cur
		}
	}

	return nil
}

func (t *BinarySearchTree[K, V]) Contains(key K) bool {
	return t.find(key) != nil
}

func (t *BinarySearchTree[K, V]) GetValue(key K) (V, bool) {
	n := t.find(key)
	if n == nil {
		var zero V
		return zero, false
	}

	return n.value, true
}

func (t *BinarySearchTree[K, V]) Delete(key K) bool {
	var removed bool

	t.root, removed = t.remove(t.root, key)
	if !removed {
		return false
	}

	t.size--
	t.mods.bump()

	return true
}

// remove deletes key from the subtree rooted at n and returns the new root
// of that subtree.
func (t *BinarySearchTree[K, V]) remove(n *treeNode[K, V], key K) (*treeNode[K, V], bool) {
	if n == nil {
		return nil, false
	}

	var removed bool

	c := t.compare(key, n.key)
	switch {
	case c < 0:
		n.left, removed = t.remove(n.left, key)
		return n, removed
	case c > 0:
		n.right, removed = t.remove(n.right, key)
		return n, removed
	case n.left != nil && n.right != nil:
		// Take over the in-order successor, then drop it from the right subtree.
		succ := leftmost(n.right)
		n.key, n.value = succ.key, succ.value
		n.right, removed = t.remove(n.right, succ.key)
		return n, removed
	case n.left != nil:
		return n.left, true
	default:
		return n.right, true
	}
}

func leftmost[K, V any](n *treeNode[K, V]) *treeNode[K, V] {
	if n.left == nil {
		return n
	}

	return leftmost(n.left)
}

// GetKey visits every node in pre-order; the last matching node wins.
func (t *BinarySearchTree[K, V]) GetKey(value V) (K, bool) {
	var (
		found K
		ok    bool
	)

	var visit func(n *treeNode[K, V])
	visit = func(n *treeNode[K, V]) {
		if n == nil {
			return
		}

		if t.equal(value, n.value) {
			found, ok = n.key, true
		}

		visit(n.left)
		visit(n.right)
	}
	visit(t.root)

	return found, ok
}

func (t *BinarySearchTree[K, V]) Size() int {
	return t.size
}

func (t *BinarySearchTree[K, V]) IsEmpty() bool {
	return t.size == 0
}

func (t *BinarySearchTree[K, V]) IsFull() bool {
	return false
}

func (t *BinarySearchTree[K, V]) Clear() {
	t.root = nil
	t.size = 0
	t.mods.reset()
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *BinarySearchTree[K, V]) Height() int {
	var height func(n *treeNode[K, V]) int
	height = func(n *treeNode[K, V]) int {
		if n == nil {
			return 0
		}

		return 1 + max(height(n.left), height(n.right))
	}

	return height(t.root)
}

func (t *BinarySearchTree[K, V]) Keys() Iterator[K] {
	keys := make([]K, 0, t.size)

	var inOrder func(n *treeNode[K, V])
	inOrder = func(n *treeNode[K, V]) {
		if n == nil {
			return
		}

		inOrder(n.left)
		keys = append(keys, n.key)
		inOrder(n.right)
	}
	inOrder(t.root)

	return newSliceIterator(keys, &t.mods)
}

func (t *BinarySearchTree[K, V]) Values() Iterator[V] {
	return &valueIterator[K, V]{keys: t.Keys(), lookup: t.GetValue}
}

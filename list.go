package dictionary

import "iter"

type listNode[T any] struct {
	data T
	next *listNode[T]
}

// list is a singly-linked list with a tail pointer. It is the storage of
// every hash table bucket.
type list[T any] struct {
	head, tail *listNode[T]
	size       int
}

func (l *list[T]) addFirst(v T) {
	l.head = &listNode[T]{data: v, next: l.head}
	if l.tail == nil {
		l.tail = l.head
	}

	l.size++
}

func (l *list[T]) addLast(v T) {
	n := &listNode[T]{data: v}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}

	l.tail = n
	l.size++
}

// find returns the first element matching the predicate.
func (l *list[T]) find(match func(T) bool) (T, bool) {
	for cur := l.head; cur != nil; cur = cur.next {
		if match(cur.data) {
			return cur.data, true
		}
	}

	var zero T
	return zero, false
}

func (l *list[T]) contains(match func(T) bool) bool {
	_, ok := l.find(match)
	return ok
}

// remove unlinks the first element matching the predicate.
func (l *list[T]) remove(match func(T) bool) bool {
	var prev *listNode[T]

	cur := l.head
	for cur != nil && !match(cur.data) {
		prev = cur
		cur = cur.next
	}

	if cur == nil {
		return false
	}

	if prev == nil {
		l.head = cur.next
	} else {
		prev.next = cur.next
	}
	if cur == l.tail {
		l.tail = prev
	}
	l.size--

	return true
}

func (l *list[T]) makeEmpty() {
	l.head, l.tail = nil, nil
	l.size = 0
}

func (l *list[T]) len() int {
	return l.size
}

func (l *list[T]) all() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := l.head; cur != nil; cur = cur.next {
			if !yield(cur.data) {
				return
			}
		}
	}
}

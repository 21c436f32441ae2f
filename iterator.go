package dictionary

import (
	"iter"

	"github.com/pkg/errors"
)

var (
	ErrConcurrentModification = errors.New("dictionary modified during iteration")
	ErrNoSuchElement          = errors.New("no more elements")
	ErrUnsupportedOperation   = errors.New("unsupported operation")
)

// Iterator is a one-shot, fail-fast cursor over a dictionary.
// Any structural change of the dictionary after the iterator was created
// makes HasNext and Next return ErrConcurrentModification.
type Iterator[T any] interface {
	HasNext() (bool, error)
	Next() (T, error)
	// Remove is not supported and always returns ErrUnsupportedOperation.
	Remove() error
}

// modCounter counts structural changes. The epoch moves on every reset, so
// a zeroed count never matches a snapshot taken before the reset.
type modCounter struct {
	epoch uint32
	count uint32
}

func (m *modCounter) bump() {
	m.count++
}

func (m *modCounter) reset() {
	m.epoch++
	m.count = 0
}

type sliceIterator[T any] struct {
	items []T
	idx   int

	live     *modCounter
	snapshot modCounter
}

func newSliceIterator[T any](items []T, live *modCounter) *sliceIterator[T] {
	return &sliceIterator[T]{
		items:    items,
		live:     live,
		snapshot: *live,
	}
}

func (it *sliceIterator[T]) HasNext() (bool, error) {
	if *it.live != it.snapshot {
		return false, ErrConcurrentModification
	}

	return it.idx < len(it.items), nil
}

func (it *sliceIterator[T]) Next() (T, error) {
	var zero T

	ok, err := it.HasNext()
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, ErrNoSuchElement
	}

	v := it.items[it.idx]
	it.idx++

	return v, nil
}

func (it *sliceIterator[T]) Remove() error {
	return ErrUnsupportedOperation
}

// valueIterator walks a key iterator and looks every key up again.
type valueIterator[K, V any] struct {
	keys   Iterator[K]
	lookup func(K) (V, bool)
}

func (it *valueIterator[K, V]) HasNext() (bool, error) {
	return it.keys.HasNext()
}

func (it *valueIterator[K, V]) Next() (V, error) {
	k, err := it.keys.Next()
	if err != nil {
		var zero V
		return zero, err
	}

	v, _ := it.lookup(k)

	return v, nil
}

func (it *valueIterator[K, V]) Remove() error {
	return it.keys.Remove()
}

// Collect drains the iterator into a slice.
func Collect[T any](it Iterator[T]) ([]T, error) {
	var out []T

	for {
		ok, err := it.HasNext()
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}

		v, err := it.Next()
		if err != nil {
			return out, err
		}

		out = append(out, v)
	}
}

// All adapts the iterator to a range-over-func sequence. An iteration error
// is yielded once, with the zero element, and ends the sequence.
func All[T any](it Iterator[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			ok, err := it.HasNext()
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			if !ok {
				return
			}

			v, err := it.Next()
			if !yield(v, err) || err != nil {
				return
			}
		}
	}
}

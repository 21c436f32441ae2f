package dictionary

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func is(v int) func(int) bool {
	return func(x int) bool { return x == v }
}

func newList(values ...int) *list[int] {
	var l list[int]
	for _, v := range slices.Backward(values) {
		l.addFirst(v)
	}

	return &l
}

func TestList_AddFirst(t *testing.T) {
	var l list[int]

	l.addFirst(3)
	l.addFirst(2)
	l.addFirst(1)

	require.Equal(t, 3, l.len())
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(l.all()))
}

func TestList_AddLast(t *testing.T) {
	var l list[int]

	l.addLast(1)
	l.addLast(2)
	l.addFirst(0)
	l.addLast(3)

	require.Equal(t, 4, l.len())
	assert.Equal(t, []int{0, 1, 2, 3}, slices.Collect(l.all()))
}

func TestList_FindContains(t *testing.T) {
	l := newList(0, 10, 20, 30, 40)

	v, ok := l.find(func(x int) bool { return x > 15 })
	require.True(t, ok)
	assert.Equal(t, 20, v)

	assert.True(t, l.contains(is(40)))
	assert.False(t, l.contains(is(41)))

	_, ok = (&list[int]{}).find(is(0))
	assert.False(t, ok)
}

func TestList_Remove(t *testing.T) {
	l := newList(0, 1, 2, 3, 4)

	require.False(t, l.remove(is(9)))

	// middle
	require.True(t, l.remove(is(2)))
	assert.Equal(t, []int{0, 1, 3, 4}, slices.Collect(l.all()))

	// head
	require.True(t, l.remove(is(0)))
	// tail
	require.True(t, l.remove(is(4)))
	assert.Equal(t, []int{1, 3}, slices.Collect(l.all()))
	assert.Equal(t, 2, l.len())

	l.addFirst(5)
	l.addLast(6)
	assert.Equal(t, []int{5, 1, 3, 6}, slices.Collect(l.all()))
}

func TestList_RemoveOnlyElement(t *testing.T) {
	l := newList(1)

	require.True(t, l.remove(is(1)))
	require.Equal(t, 0, l.len())
	require.Empty(t, slices.Collect(l.all()))

	l.addLast(2)
	l.addFirst(1)
	l.addLast(3)
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(l.all()))
}

func TestList_MakeEmpty(t *testing.T) {
	var l list[string]
	l.addFirst("a")
	l.addFirst("b")

	l.makeEmpty()

	require.Equal(t, 0, l.len())
	require.Empty(t, slices.Collect(l.all()))

	l.addLast("c")
	assert.Equal(t, []string{"c"}, slices.Collect(l.all()))
}

package dictionary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalancedTree_Basic(t *testing.T) {
	bt := NewBalancedTree[string, int]()

	require.True(t, bt.Add("foo", 42))
	require.False(t, bt.Add("foo", 100))

	v, ok := bt.GetValue("foo")
	require.True(t, ok)
	assert.Equal(t, 42, v)

	_, ok = bt.GetValue("bar")
	assert.False(t, ok)

	assert.False(t, bt.IsFull())
	assert.Equal(t, 1, bt.Size())

	require.True(t, bt.Delete("foo"))
	require.False(t, bt.Delete("foo"))
	assert.True(t, bt.IsEmpty())
}

func TestBalancedTree_GetKey_FirstInKeyOrder(t *testing.T) {
	bt := NewBalancedTree[int, string]()
	for _, k := range []int{9, 2, 7, 4} {
		bt.Add(k, "same")
	}

	key, ok := bt.GetKey("same")
	require.True(t, ok)
	assert.Equal(t, 2, key)

	_, ok = bt.GetKey("other")
	assert.False(t, ok)
}

func TestBalancedTree_CustomOrder(t *testing.T) {
	byFold := func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	}
	bt := NewBalancedTreeFunc(byFold, func(a, b int) bool { return a == b })

	require.True(t, bt.Add("Banana", 2))
	require.True(t, bt.Add("apple", 1))
	require.False(t, bt.Add("BANANA", 3))

	assert.True(t, bt.Contains("banana"))

	keys, err := Collect(bt.Keys())
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "Banana"}, keys)

	values, err := Collect(bt.Values())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, values)
}

func TestBalancedTree_IteratorIsLazy(t *testing.T) {
	bt := NewBalancedTree[int, int]()
	for i := range 3 {
		bt.Add(i, i)
	}

	it := bt.Keys()

	ok, err := it.HasNext()
	require.NoError(t, err)
	require.True(t, ok)

	// HasNext twice does not skip an element
	ok, err = it.HasNext()
	require.NoError(t, err)
	require.True(t, ok)

	for i := range 3 {
		k, err := it.Next()
		require.NoError(t, err)
		require.Equal(t, i, k)
	}

	_, err = it.Next()
	require.ErrorIs(t, err, ErrNoSuchElement)
}

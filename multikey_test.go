package rbt

import (
	"cmp"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect[K any](it Iterator[K]) ([]K, error) {
	values := make([]K, 0)
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			return values, err
		}
		values = append(values, v)
	}
	return values, nil
}

func newMultiKey(keys ...int) *MultiKeyTree[int] {
	tree := New[int]()
	for _, k := range keys {
		tree.InsertSingleKey(k)
	}
	return tree
}

func TestInsertSingleKey(t *testing.T) {
	tree := New[string]()

	outcome, err := tree.InsertSingleKey("Apple")
	require.NoError(t, err)
	assert.Equal(t, NewNode, outcome)

	outcome, err = tree.InsertSingleKey("Apple")
	require.NoError(t, err)
	assert.Equal(t, Merged, outcome)

	outcome, err = tree.InsertSingleKey("Banana")
	require.NoError(t, err)
	assert.Equal(t, NewNode, outcome)

	assert.Equal(t, 3, tree.NumKeys())
	assert.Equal(t, 2, tree.Size())
	assert.Equal(t, "NewNode", NewNode.String())
	assert.Equal(t, "Merged", Merged.String())
	assert.Equal(t, "InsertOutcome(7)", InsertOutcome(7).String())
}

func TestInsertSingleKeyNil(t *testing.T) {
	type item struct{ name string }
	tree := NewFunc(func(a, b *item) int { return strings.Compare(a.name, b.name) })

	_, err := tree.InsertSingleKey(nil)
	assert.ErrorIs(t, err, ErrNullKey)
	assert.Equal(t, 0, tree.Size())
	assert.Equal(t, 0, tree.NumKeys())

	_, err = tree.InsertSingleKey(&item{"a"})
	require.NoError(t, err)
	assert.Equal(t, 1, tree.NumKeys())
}

func TestDuplicateKeysIteration(t *testing.T) {
	tree := newMultiKey(10, 5, 20, 5)

	assert.Equal(t, 3, tree.Size())
	assert.Equal(t, 4, tree.NumKeys())

	values, err := collect(tree.Iterator())
	require.NoError(t, err)
	assert.Equal(t, []int{5, 5, 10, 20}, values)
	assert.Equal(t, "[ [5 5], [10], [20] ]", tree.String())
}

func TestStartPoint(t *testing.T) {
	dataSet := []struct {
		start    int
		expected []int
	}{
		{15, []int{20}},
		{10, []int{10, 20}},
		{5, []int{5, 5, 10, 20}},
		{6, []int{10, 20}},
		{-100, []int{5, 5, 10, 20}},
		{20, []int{20}},
		{21, []int{}},
	}

	tree := newMultiKey(10, 5, 20, 5)
	for _, d := range dataSet {
		tree.SetStartPoint(d.start)

		start, ok := tree.StartPoint()
		assert.True(t, ok)
		assert.Equal(t, d.start, start)

		values, err := collect(tree.Iterator())
		require.NoError(t, err)
		assert.Equal(t, d.expected, values, "start point %d", d.start)
	}

	tree.ClearStartPoint()
	_, ok := tree.StartPoint()
	assert.False(t, ok)

	values, err := collect(tree.Iterator())
	require.NoError(t, err)
	assert.Equal(t, []int{5, 5, 10, 20}, values)
}

func TestStartPointNilClears(t *testing.T) {
	a, b, c := "a", "b", "c"
	tree := NewFunc(func(x, y *string) int { return strings.Compare(*x, *y) })
	for _, k := range []*string{&c, &a, &b} {
		tree.InsertSingleKey(k)
	}

	tree.SetStartPoint(&b)
	values, err := collect(tree.Iterator())
	require.NoError(t, err)
	assert.Equal(t, []*string{&b, &c}, values)

	tree.SetStartPoint(nil)
	values, err = collect(tree.Iterator())
	require.NoError(t, err)
	assert.Equal(t, []*string{&a, &b, &c}, values)
}

func TestStartPointSnapshot(t *testing.T) {
	tree := newMultiKey(1, 2, 3, 4, 5)

	tree.SetStartPoint(4)
	late := tree.Iterator()
	tree.ClearStartPoint()
	full := tree.Iterator()

	lateValues, err := collect(late)
	require.NoError(t, err)
	fullValues, err := collect(full)
	require.NoError(t, err)

	assert.Equal(t, []int{4, 5}, lateValues)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, fullValues)
}

func TestIteratorExhausted(t *testing.T) {
	tree := newMultiKey(2, 1)
	it := tree.Iterator()

	assert.True(t, it.HasNext())
	v, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	assert.True(t, it.HasNext())
	v, err = it.Next()
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	assert.False(t, it.HasNext())
	v, err = it.Next()
	assert.Equal(t, 0, v)
	assert.Equal(t, ErrNoSuchElement, err)

	empty := New[int]().Iterator()
	assert.False(t, empty.HasNext())
	_, err = empty.Next()
	assert.ErrorIs(t, err, ErrNoSuchElement)
}

func TestClear(t *testing.T) {
	tree := newMultiKey(3, 1, 2, 2)
	tree.SetStartPoint(2)
	tree.Clear()

	assert.Equal(t, 0, tree.Size())
	assert.Equal(t, 0, tree.NumKeys())
	assert.False(t, tree.Iterator().HasNext())

	// the start point survives a clear
	tree.InsertSingleKey(1)
	tree.InsertSingleKey(5)
	values, err := collect(tree.Iterator())
	require.NoError(t, err)
	assert.Equal(t, []int{5}, values)
}

func TestFirstKeyDecidesEquality(t *testing.T) {
	// compares case-insensitively, so "apple" and "APPLE" share a list
	tree := NewFunc(func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})

	for _, k := range []string{"apple", "Banana", "APPLE", "banana", "Apple"} {
		tree.InsertSingleKey(k)
	}
	assert.Equal(t, 2, tree.Size())
	assert.Equal(t, 5, tree.NumKeys())

	values, err := collect(tree.Iterator())
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "APPLE", "Apple", "Banana", "banana"}, values)

	n := tree.tree.find(newKeyList("APPLE"))
	require.NotNil(t, n)
	assert.Equal(t, "apple", n.data.First())
	assert.Equal(t, []string{"apple", "APPLE", "Apple"}, n.data.Keys())
	assert.Equal(t, 3, n.data.Len())
}

type calorieItem struct {
	name     string
	calories int
}

func TestRepresentativeOnlyLookup(t *testing.T) {
	// items are ordered by calories; the list keeps whatever joined it
	tree := NewFunc(func(a, b calorieItem) int { return cmp.Compare(a.calories, b.calories) })
	tree.InsertSingleKey(calorieItem{"kiwi", 80})
	tree.InsertSingleKey(calorieItem{"litchi", 80})
	tree.InsertSingleKey(calorieItem{"tomato", 100})

	n := tree.tree.find(newKeyList(calorieItem{"anything", 80}))
	require.NotNil(t, n)
	assert.Equal(t, "kiwi", n.data.First().name)

	names := make([]string, 0)
	for item := range tree.All() {
		names = append(names, item.name)
	}
	assert.Equal(t, []string{"kiwi", "litchi", "tomato"}, names)
}

func TestAll(t *testing.T) {
	tree := newMultiKey(7, 3, 9, 3, 1)
	assert.Equal(t, []int{1, 3, 3, 7, 9}, slices.Collect(tree.All()))

	tree.SetStartPoint(4)
	assert.Equal(t, []int{7, 9}, slices.Collect(tree.All()))

	got := make([]int, 0)
	tree.ClearStartPoint()
	for v := range tree.All() {
		if v > 3 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 3, 3}, got)
}

func TestBigKeySetMultiKey(t *testing.T) {
	if testing.Short() {
		t.Skip("big key set")
	}
	keys := getKeys("1mvl5_10")

	tree := New[string]()
	for _, k := range keys {
		_, err := tree.InsertSingleKey(k)
		require.NoError(t, err)
	}
	for _, k := range keys[:len(keys)/10] {
		outcome, err := tree.InsertSingleKey(k)
		require.NoError(t, err)
		require.Equal(t, Merged, outcome)
	}
	assert.Equal(t, len(keys)+len(keys)/10, tree.NumKeys())
	checkRedBlack(t, tree.tree)

	prev := ""
	count := 0
	for k := range tree.All() {
		require.GreaterOrEqual(t, k, prev)
		prev = k
		count++
	}
	assert.Equal(t, tree.NumKeys(), count)
}

func BenchmarkWordsMultiKeyInsert(b *testing.B) {
	benchBigKeySet(b, func(b *testing.B, fn string, keys []string) {
		n := len(keys)
		b.ResetTimer()

		for i := 0; i < b.N/n; i++ {
			tree := New[string]()
			for _, k := range keys {
				tree.InsertSingleKey(k)
			}
		}
	})
}

func BenchmarkWordsMultiKeyIterate(b *testing.B) {
	benchBigKeySet(b, func(b *testing.B, fn string, keys []string) {
		tree := New[string]()
		for _, k := range keys {
			tree.InsertSingleKey(k)
		}
		tree.SetStartPoint(keys[len(keys)/2])
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for range tree.All() {
			}
		}
	})
}

package rbt

import "iter"

// MultiKeyTree stores values in a red-black tree of key lists, one list per
// distinct key. Duplicate keys are appended to the list of the node whose
// first value compares equal; later values in a list are never used for
// lookups.
//
// A MultiKeyTree is not safe for concurrent use. Inserting or clearing while
// an iterator is in progress leaves that iterator in an undefined state.
type MultiKeyTree[K any] struct {
	tree    *RedBlackTree[*KeyList[K]]
	compare CompareFunc[K]
	numKeys int

	// one start point per tree, read by every iterator when it is created
	startPoint K
	hasStart   bool
}

type multiKeyIterator[K any] struct {
	stack []*node[*KeyList[K]]
	// unread values of the current key list
	pending []K
}

// InsertSingleKey stores key. It reports Merged when an equal key was already
// present and key joined its list, NewNode otherwise.
func (m *MultiKeyTree[K]) InsertSingleKey(key K) (InsertOutcome, error) {
	if isNil(key) {
		return NewNode, ErrNullKey
	}

	list := newKeyList(key)
	if n := m.tree.find(list); n != nil {
		n.data.add(key)
		m.numKeys++
		return Merged, nil
	}

	if _, err := m.tree.Insert(list); err != nil {
		return NewNode, err
	}
	m.numKeys++
	return NewNode, nil
}

// NumKeys returns the number of values inserted, duplicates included.
func (m *MultiKeyTree[K]) NumKeys() int {
	return m.numKeys
}

// Size returns the number of distinct keys.
func (m *MultiKeyTree[K]) Size() int {
	return m.tree.Size()
}

// SetStartPoint makes iterators created afterwards skip every key that
// compares less than start. A nil start clears the setting. Iterators that
// already exist are not affected.
func (m *MultiKeyTree[K]) SetStartPoint(start K) {
	if isNil(start) {
		m.ClearStartPoint()
		return
	}
	m.startPoint = start
	m.hasStart = true
}

func (m *MultiKeyTree[K]) ClearStartPoint() {
	var zero K
	m.startPoint = zero
	m.hasStart = false
}

// StartPoint returns the current start point, if any.
func (m *MultiKeyTree[K]) StartPoint() (K, bool) {
	return m.startPoint, m.hasStart
}

// Clear drops all keys. The start point is kept.
func (m *MultiKeyTree[K]) Clear() {
	m.tree.Clear()
	m.numKeys = 0
}

func (m *MultiKeyTree[K]) String() string {
	return m.tree.InOrderString()
}

// Iterator returns a cursor over the stored values in ascending key order,
// values of one key in insertion order, starting at the smallest key not
// less than the current start point.
func (m *MultiKeyTree[K]) Iterator() Iterator[K] {
	it := &multiKeyIterator[K]{}

	curr := m.tree.root
	if !m.hasStart {
		it.pushLeft(curr)
		return it
	}

	for curr != nil {
		if m.compare(m.startPoint, curr.data.First()) <= 0 {
			it.stack = append(it.stack, curr)
			curr = curr.down[left]
		} else {
			curr = curr.down[right]
		}
	}
	return it
}

// All returns the values as a range-over-func sequence. The start point is
// read each time ranging begins.
func (m *MultiKeyTree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		it := m.Iterator()
		for it.HasNext() {
			key, err := it.Next()
			if err != nil || !yield(key) {
				return
			}
		}
	}
}

func (it *multiKeyIterator[K]) pushLeft(n *node[*KeyList[K]]) {
	for ; n != nil; n = n.down[left] {
		it.stack = append(it.stack, n)
	}
}

func (it *multiKeyIterator[K]) HasNext() bool {
	return it != nil && (len(it.stack) > 0 || len(it.pending) > 0)
}

func (it *multiKeyIterator[K]) Next() (K, error) {
	if !it.HasNext() {
		var zero K
		return zero, ErrNoSuchElement
	}

	for len(it.pending) == 0 {
		n := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]
		it.pending = n.data.keys
		it.pushLeft(n.down[right])
	}

	key := it.pending[0]
	it.pending = it.pending[1:]
	return key, nil
}

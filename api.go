// Package rbt implements an in-memory ordered multi-map on top of a
// red-black tree. Each tree node holds the list of values that compare equal,
// and iteration can resume from a remembered start point.
package rbt

import (
	"cmp"
	"iter"
)

// Collection is an ordered multi-map: values that compare equal share one
// key list, and iteration yields every stored value in ascending order.
type Collection[K any] interface {
	InsertSingleKey(key K) (InsertOutcome, error)
	NumKeys() int
	Size() int
	SetStartPoint(start K)
	ClearStartPoint()
	Iterator() Iterator[K]
	All() iter.Seq[K]
	Clear()
}

type Iterator[K any] interface {
	HasNext() bool
	Next() (K, error)
}

var _ Collection[int] = (*MultiKeyTree[int])(nil)

// New returns an empty MultiKeyTree for an ordered key type.
func New[K cmp.Ordered]() *MultiKeyTree[K] {
	return NewFunc(cmp.Compare[K])
}

// NewFunc returns an empty MultiKeyTree ordered according to compare.
func NewFunc[K any](compare CompareFunc[K]) *MultiKeyTree[K] {
	return &MultiKeyTree[K]{
		tree:    NewRedBlackTree(byFirstKey(compare)),
		compare: compare,
	}
}

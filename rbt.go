package rbt

import (
	"errors"
	"fmt"
	"reflect"
)

const (
	red color = iota
	black
)

const (
	left  = 0
	right = 1
)

const (
	// NewNode is reported when an insert created a node for a key not seen before.
	NewNode InsertOutcome = iota
	// Merged is reported when an insert appended to the key list of an existing node.
	Merged
)

var (
	ErrNullKey         = errors.New("cannot insert a nil key into the collection")
	ErrNullValue       = errors.New("cannot insert a nil value into the tree")
	ErrInvalidRotation = errors.New("child node is not a direct descendant of the provided parent node")
	ErrNoSuchElement   = errors.New("there are no more elements in the iteration")
)

type (
	color int

	// InsertOutcome tells whether InsertSingleKey created a node or merged into one.
	InsertOutcome int

	// CompareFunc orders two values: negative when a < b, zero when equal,
	// positive when a > b. It must be a total order consistent with equality.
	CompareFunc[T any] func(a, b T) int

	node[T any] struct {
		data  T
		color color
		up    *node[T]
		// down[left], down[right]
		down [2]*node[T]
	}
)

func (c color) String() string {
	if c == black {
		return "black"
	}
	return "red"
}

func (o InsertOutcome) String() string {
	switch o {
	case NewNode:
		return "NewNode"
	case Merged:
		return "Merged"
	}
	return fmt.Sprintf("InsertOutcome(%d)", int(o))
}

// isNil reports whether v is an absent value: a nil interface or a nil
// pointer, map, slice, func or chan.
func isNil[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

package rbt

import "fmt"

// KeyList holds every value inserted under one key, in insertion order.
// The first value is the representative used to order and find the list.
type KeyList[K any] struct {
	keys []K
}

func newKeyList[K any](key K) *KeyList[K] {
	return &KeyList[K]{keys: []K{key}}
}

func (l *KeyList[K]) add(key K) {
	l.keys = append(l.keys, key)
}

// First returns the representative value.
func (l *KeyList[K]) First() K {
	return l.keys[0]
}

func (l *KeyList[K]) Len() int {
	return len(l.keys)
}

// Keys returns a copy of the values.
func (l *KeyList[K]) Keys() []K {
	return append([]K(nil), l.keys...)
}

func (l *KeyList[K]) String() string {
	return fmt.Sprint(l.keys)
}

// byFirstKey orders key lists by their representative values only.
func byFirstKey[K any](compare CompareFunc[K]) CompareFunc[*KeyList[K]] {
	return func(a, b *KeyList[K]) int {
		return compare(a.First(), b.First())
	}
}

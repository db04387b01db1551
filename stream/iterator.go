package stream

import (
	"errors"
	"reflect"

	"jsouthworth.net/go/seq"
)

var errExhausted = errors.New("iterator is exhausted")

// Iterator is a single pass cursor over the elements of a stream.
// Iterators are mutable and are not safe for concurrent access so
// they may not be shared between goroutines.
type Iterator interface {
	// HasNext is true when there are more elements to be iterated over.
	HasNext() bool
	// Next provides the next element and increments the cursor. It
	// panics if called when HasNext is false.
	Next() interface{}
}

// Iterable is the capability a value needs to act as a stream source:
// producing a fresh Iterator on demand. *Stream and *Group satisfy
// Iterable. A value whose Iterator method cannot restart from the
// beginning yields a single pass stream.
type Iterable interface {
	Iterator() Iterator
}

type emptySource struct{}

func (emptySource) iterator() Iterator {
	return emptyIterator{}
}

type emptyIterator struct{}

func (emptyIterator) HasNext() bool {
	return false
}

func (emptyIterator) Next() interface{} {
	panic(errExhausted)
}

type singletonSource struct {
	elem interface{}
}

func (s singletonSource) iterator() Iterator {
	return &singletonIterator{elem: s.elem}
}

type singletonIterator struct {
	elem interface{}
	done bool
}

func (i *singletonIterator) HasNext() bool {
	return !i.done
}

func (i *singletonIterator) Next() interface{} {
	if i.done {
		panic(errExhausted)
	}
	i.done = true
	return i.elem
}

type sliceSource struct {
	elems []interface{}
}

func (s sliceSource) iterator() Iterator {
	return &sliceIterator{elems: s.elems}
}

type sliceIterator struct {
	elems []interface{}
	cur   int
}

func (i *sliceIterator) HasNext() bool {
	return i.cur < len(i.elems)
}

func (i *sliceIterator) Next() interface{} {
	if i.cur >= len(i.elems) {
		panic(errExhausted)
	}
	v := i.elems[i.cur]
	i.cur++
	return v
}

type reflectSource struct {
	v reflect.Value
}

func (s reflectSource) iterator() Iterator {
	return &reflectIterator{v: s.v}
}

type reflectIterator struct {
	v   reflect.Value
	cur int
}

func (i *reflectIterator) HasNext() bool {
	return i.cur < i.v.Len()
}

func (i *reflectIterator) Next() interface{} {
	if i.cur >= i.v.Len() {
		panic(errExhausted)
	}
	v := i.v.Index(i.cur).Interface()
	i.cur++
	return v
}

type seqSource struct {
	s seq.Sequence
}

func (s seqSource) iterator() Iterator {
	return &seqIterator{s: s.s}
}

type seqIterator struct {
	s seq.Sequence
}

func (i *seqIterator) HasNext() bool {
	return i.s != nil
}

func (i *seqIterator) Next() interface{} {
	if i.s == nil {
		panic(errExhausted)
	}
	v := i.s.First()
	i.s = i.s.Next()
	return v
}

type iterableSource struct {
	it Iterable
}

func (s iterableSource) iterator() Iterator {
	return s.it.Iterator()
}

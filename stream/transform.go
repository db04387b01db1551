package stream

import (
	"fmt"
	"reflect"
)

type mappedSource struct {
	up source
	fn func(interface{}) interface{}
}

func (s mappedSource) iterator() Iterator {
	return &mappedIterator{up: s.up.iterator(), fn: s.fn}
}

type mappedIterator struct {
	up Iterator
	fn func(interface{}) interface{}
}

func (i *mappedIterator) HasNext() bool {
	return i.up.HasNext()
}

func (i *mappedIterator) Next() interface{} {
	return i.fn(i.up.Next())
}

type filteredSource struct {
	up   source
	pred func(interface{}) bool
}

func (s filteredSource) iterator() Iterator {
	return &filteredIterator{up: s.up.iterator(), pred: s.pred}
}

// filteredIterator buffers at most one element ahead: HasNext pulls
// from upstream until a satisfying element is found or upstream is
// exhausted.
type filteredIterator struct {
	up     Iterator
	pred   func(interface{}) bool
	next   interface{}
	primed bool
}

func (i *filteredIterator) HasNext() bool {
	for !i.primed && i.up.HasNext() {
		v := i.up.Next()
		if i.pred(v) {
			i.next = v
			i.primed = true
		}
	}
	return i.primed
}

func (i *filteredIterator) Next() interface{} {
	if !i.HasNext() {
		panic(errExhausted)
	}
	v := i.next
	i.next = nil
	i.primed = false
	return v
}

type castSource struct {
	up source
	to reflect.Type
}

func (s castSource) iterator() Iterator {
	return &castIterator{up: s.up.iterator(), to: s.to}
}

type castIterator struct {
	up Iterator
	to reflect.Type
}

func (i *castIterator) HasNext() bool {
	return i.up.HasNext()
}

func (i *castIterator) Next() interface{} {
	v := i.up.Next()
	if !isInstance(v, i.to) {
		panic(fmt.Errorf("cannot cast %T to %s", v, i.to))
	}
	return v
}

// isInstance reports whether v could be assigned to a variable of
// type to. An untyped nil satisfies any interface target.
func isInstance(v interface{}, to reflect.Type) bool {
	if v == nil {
		return to.Kind() == reflect.Interface
	}
	t := reflect.TypeOf(v)
	if to.Kind() == reflect.Interface {
		return t.Implements(to)
	}
	return t.AssignableTo(to)
}

type skipSource struct {
	up source
	n  int
}

func (s skipSource) iterator() Iterator {
	return &skipIterator{up: s.up.iterator(), n: s.n}
}

type skipIterator struct {
	up Iterator
	n  int
}

func (i *skipIterator) HasNext() bool {
	for i.n > 0 && i.up.HasNext() {
		i.up.Next()
		i.n--
	}
	return i.up.HasNext()
}

func (i *skipIterator) Next() interface{} {
	if !i.HasNext() {
		panic(errExhausted)
	}
	return i.up.Next()
}

type takeSource struct {
	up source
	n  int
}

func (s takeSource) iterator() Iterator {
	return &takeIterator{up: s.up.iterator(), left: s.n}
}

type takeIterator struct {
	up   Iterator
	left int
}

func (i *takeIterator) HasNext() bool {
	return i.left > 0 && i.up.HasNext()
}

func (i *takeIterator) Next() interface{} {
	if !i.HasNext() {
		panic(errExhausted)
	}
	i.left--
	return i.up.Next()
}

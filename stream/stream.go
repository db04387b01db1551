// Package stream implements lazy streams over the immutable
// collections and other sequence sources. A stream is a chain of
// lightweight wrappers around a source; building the chain reads no
// elements. Elements are pulled one at a time when a consuming
// operation (Reduce, ToList, First, ...) runs, and every consuming
// call re-traverses the chain from the original source.
package stream // import "github.com/MarcinListkowski/jstreams/stream"

import (
	"errors"
	"reflect"

	"jsouthworth.net/go/dyn"
	"jsouthworth.net/go/immutable/hashset"
	"jsouthworth.net/go/immutable/vector"
	"jsouthworth.net/go/seq"
)

var errNilSource = errors.New("cannot create a stream from a nil source")
var errNoConversion = errors.New("cannot convert supplied value to a stream")
var errNilType = errors.New("Cast requires a non-nil target type")
var errNegativeSkip = errors.New("Skip requires a non-negative count")
var errNegativeTake = errors.New("Take requires a non-negative count")
var errMapSig = errors.New("Map requires a function: func(v vT) oT")
var errFlatMapSig = errors.New("FlatMap requires a function: func(v vT) oT")
var errFilterSig = errors.New("Filter requires a function: func(v vT) bool")
var errSomeSig = errors.New("Some requires a function: func(v vT) bool")
var errSortKeySig = errors.New("SortBy requires a function: func(v vT) kT")
var errGroupKeySig = errors.New("GroupBy requires a function: func(v vT) kT")
var errReduceSig = errors.New("Reduce requires a function: func(init iT, v vT) oT")
var errCompareSig = errors.New("Sort requires a function: func(a aT, b bT) int")
var errRangeSig = errors.New("Range requires a function: func(v vT) bool or func(v vT)")

// Stream is a lazy sequence of elements. A Stream holds no elements
// itself; it holds a recipe for traversing a source. Streams are
// immutable, transforming methods return a new Stream wrapping the
// receiver. A Stream may be traversed any number of times and each
// traversal is independent, provided the underlying source supports
// repeated traversal (see FromIterable).
type Stream struct {
	src source
}

type source interface {
	iterator() Iterator
}

var empty = Stream{src: emptySource{}}

// Empty returns the empty stream. This is always the same empty stream.
func Empty() *Stream {
	return &empty
}

// Singleton returns a stream that yields elem exactly once. elem may
// be nil; a stream of one nil element is not the empty stream.
func Singleton(elem interface{}) *Stream {
	return &Stream{src: singletonSource{elem: elem}}
}

// New returns a stream over the supplied elements similar to how one
// defines a slice inline in go.
func New(elems ...interface{}) *Stream {
	return &Stream{src: sliceSource{elems: elems}}
}

// From will convert many go types to a stream. No elements are read
// until the stream is consumed.
//
// *Stream:
//    Returned directly.
// Iterable:
//    Each traversal of the stream requests a fresh Iterator from the
//    value. If the value only supports a single pass, repeated
//    traversals of the stream will reflect that; the stream does not
//    hide it.
// []interface{}:
//    New is called with the elements.
// seq.Seqable:
//    Seq is called on the value and the stream traverses the
//    resulting sequence.
// seq.Sequence:
//    The stream traverses the sequence. Care should be taken to
//    consume infinite sequences only with Take, First or Some.
// []T:
//    The slice is traversed using reflection.
//
// From panics if the value is nil or of an unsupported type.
func From(value interface{}) *Stream {
	if value == nil {
		panic(errNilSource)
	}
	switch v := value.(type) {
	case *Stream:
		return v
	case Iterable:
		return &Stream{src: iterableSource{it: v}}
	case []interface{}:
		return New(v...)
	case seq.Seqable:
		return &Stream{src: seqSource{s: seq.Seq(v)}}
	case seq.Sequence:
		return &Stream{src: seqSource{s: v}}
	default:
		return fromReflection(value)
	}
}

func fromReflection(value interface{}) *Stream {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return &Stream{src: reflectSource{v: rv}}
	default:
		panic(errNoConversion)
	}
}

// Iterator returns a fresh iterator over the elements of the stream.
// Iterators are single pass and are not safe for concurrent use; each
// call returns an independent iterator that re-traverses the source.
func (s *Stream) Iterator() Iterator {
	return s.src.iterator()
}

// Map returns a stream that applies fn to each element as it is
// pulled. Map can take the following types as fn:
//
// func(v interface{}) interface{}
// func(v vT) oT
//
// Map will panic if given any other function type.
func (s *Stream) Map(fn interface{}) *Stream {
	return &Stream{src: mappedSource{up: s.src, fn: genMapFunc(fn, errMapSig)}}
}

// Filter returns a stream of the elements that satisfy pred, in their
// original order. Filter can take the following types as pred:
//
// func(v interface{}) bool
// func(v vT) bool
//
// Filter will panic if given any other function type.
func (s *Stream) Filter(pred interface{}) *Stream {
	return &Stream{src: filteredSource{up: s.src, pred: genPredFunc(pred, errFilterSig)}}
}

// Cast returns a stream that checks each element against the target
// type as it is pulled. An element whose runtime type is not
// assignable to the target panics at the point it is pulled, not when
// Cast is called. Cast panics immediately if to is nil.
func (s *Stream) Cast(to reflect.Type) *Stream {
	if to == nil {
		panic(errNilType)
	}
	return &Stream{src: castSource{up: s.src, to: to}}
}

// OfType returns a stream of only the elements whose runtime type is
// assignable to the target type. It is Filter and Cast composed.
func (s *Stream) OfType(to reflect.Type) *Stream {
	if to == nil {
		panic(errNilType)
	}
	return s.Filter(func(v interface{}) bool {
		return isInstance(v, to)
	}).Cast(to)
}

// Skip returns a stream without the first n elements of this stream,
// or the empty stream if fewer than n remain. Skip panics if n is
// negative.
func (s *Stream) Skip(n int) *Stream {
	if n < 0 {
		panic(errNegativeSkip)
	}
	return &Stream{src: skipSource{up: s.src, n: n}}
}

// Take returns a stream of at most the first n elements of this
// stream. The returned stream never pulls more than n elements from
// its upstream. Take panics if n is negative.
func (s *Stream) Take(n int) *Stream {
	if n < 0 {
		panic(errNegativeTake)
	}
	return &Stream{src: takeSource{up: s.src, n: n}}
}

// Sort returns a stream that yields the elements of this stream in
// the order given by cmp. cmp must return a negative value when a
// orders before b, zero when they order equally, and a positive value
// otherwise; ties keep no particular order. The stream stays lazy
// until traversed: the first pull of each iterator materializes and
// sorts the upstream, and every fresh iterator sorts again. Sort can
// take the following types as cmp:
//
// func(a, b interface{}) int
// func(a aT, b bT) int
//
// Sort will panic if given any other function type.
func (s *Stream) Sort(cmp interface{}) *Stream {
	return &Stream{src: sortedSource{up: s.src, cmp: genCompareFunc(cmp)}}
}

// SortBy returns a stream sorted ascending by the key keyFn extracts
// from each element. Keys are ordered naturally; see Comparer for
// supplying an ordering for other key types. keyFn may be any
// function Map accepts.
func (s *Stream) SortBy(keyFn interface{}) *Stream {
	key := genMapFunc(keyFn, errSortKeySig)
	return s.Sort(func(a, b interface{}) int {
		return defaultCompare(key(a), key(b))
	})
}

// SortByDescending returns a stream sorted descending by the key
// keyFn extracts from each element.
func (s *Stream) SortByDescending(keyFn interface{}) *Stream {
	key := genMapFunc(keyFn, errSortKeySig)
	return s.Sort(func(a, b interface{}) int {
		return defaultCompare(key(b), key(a))
	})
}

// GroupBy returns a stream of *Group values, one per distinct key
// produced by keyFn. Groups appear in order of the first occurrence
// of their key and each group's members keep their original relative
// order. The first pull of each iterator consumes the entire
// upstream. keyFn may be any function Map accepts; keys must be
// usable as hash map keys.
func (s *Stream) GroupBy(keyFn interface{}) *Stream {
	return &Stream{src: groupedSource{up: s.src, key: genMapFunc(keyFn, errGroupKeySig)}}
}

// Flatten collapses a stream whose elements are themselves sources
// into a single stream. Each element is converted with From as it is
// reached, so the elements may be streams, groups, slices, immutable
// collections or sequences.
func (s *Stream) Flatten() *Stream {
	return &Stream{src: flatSource{up: s.src}}
}

// Concat returns a stream of the elements of this stream followed by
// the elements of other.
func (s *Stream) Concat(other *Stream) *Stream {
	if other == nil {
		panic(errNilSource)
	}
	return New(s, other).Flatten()
}

// FlatMap maps each element to a source of new elements and flattens
// the results into a single stream. fn may return anything From
// accepts. fn may be any function Map accepts.
func (s *Stream) FlatMap(fn interface{}) *Stream {
	mapped := &Stream{src: mappedSource{up: s.src, fn: genMapFunc(fn, errFlatMapSig)}}
	return mapped.Flatten()
}

// Reduce folds every element of the stream into an accumulator
// starting at init, applying fn in traversal order. Reduce can take
// the following types as fn:
//
// func(init interface{}, v interface{}) interface{}
// func(init iT, v vT) oT
//
// Reduce will panic if given any other function type.
func (s *Stream) Reduce(fn interface{}, init interface{}) interface{} {
	rFn := genReduceFunc(fn)
	res := init
	for it := s.Iterator(); it.HasNext(); {
		res = rFn(res, it.Next())
	}
	return res
}

// ToList traverses the stream and collects the elements into a
// persistent vector in traversal order.
func (s *Stream) ToList() *vector.Vector {
	return s.Reduce(func(res, v interface{}) interface{} {
		return res.(*vector.TVector).Append(v)
	}, vector.Empty().AsTransient()).(*vector.TVector).AsPersistent()
}

// ToSet traverses the stream and collects the distinct elements into
// a persistent set.
func (s *Stream) ToSet() *hashset.Set {
	return s.Reduce(func(res, v interface{}) interface{} {
		return res.(*hashset.TSet).Add(v)
	}, hashset.Empty().AsTransient()).(*hashset.TSet).AsPersistent()
}

// AsNative traverses the stream and returns the elements as a
// []interface{}.
func (s *Stream) AsNative() []interface{} {
	var out []interface{}
	for it := s.Iterator(); it.HasNext(); {
		out = append(out, it.Next())
	}
	return out
}

// Length traverses the stream and returns the number of elements.
func (s *Stream) Length() int {
	return s.Reduce(func(res, _ interface{}) interface{} {
		return res.(int) + 1
	}, 0).(int)
}

// First returns the first element of the stream and true, or nil and
// false if the stream is empty. Only the first element is pulled.
func (s *Stream) First() (interface{}, bool) {
	it := s.Iterator()
	if !it.HasNext() {
		return nil, false
	}
	return it.Next(), true
}

// Last traverses the stream to exhaustion and returns the final
// element and true, or nil and false if the stream is empty.
func (s *Stream) Last() (interface{}, bool) {
	var last interface{}
	var found bool
	for it := s.Iterator(); it.HasNext(); {
		last = it.Next()
		found = true
	}
	return last, found
}

// Some reports whether any element satisfies pred. Traversal stops at
// the first satisfying element. pred may be any function Filter
// accepts.
func (s *Stream) Some(pred interface{}) bool {
	filtered := &Stream{src: filteredSource{
		up:   s.src,
		pred: genPredFunc(pred, errSomeSig),
	}}
	_, ok := filtered.First()
	return ok
}

// Range calls the passed in function on each element of the stream.
// The function passed in may be of many types:
//
// func(value interface{}) bool:
//    Takes a value of any type and returns if the loop should continue.
//    Useful to avoid reflection where not needed and to support
//    heterogenous streams.
// func(value interface{})
//    Takes a value of any type.
//    Useful to avoid reflection where not needed and to support
//    heterogenous streams.
// func(value T) bool:
//    Takes a value of the type of element traversed by the stream and
//    returns if the loop should continue. Useful for homogeneous streams.
//    Is called with reflection and will panic if the type is incorrect.
// func(value T)
//    Takes a value of the type of element traversed by the stream.
//    Is called with reflection and will panic if the type is incorrect.
// Range will panic if passed anything that doesn't match one of these signatures
func (s *Stream) Range(do interface{}) {
	fn := genRangeFunc(do)
	cont := true
	for it := s.Iterator(); cont && it.HasNext(); {
		cont = fn(it.Next())
	}
}

// Equal traverses both streams and compares each value to determine
// if the stream is equal to the one passed in. Equal consumes both
// streams up to the first difference.
func (s *Stream) Equal(o interface{}) bool {
	other, ok := o.(*Stream)
	if !ok {
		return false
	}
	it := s.Iterator()
	oit := other.Iterator()
	for it.HasNext() && oit.HasNext() {
		if !dyn.Equal(it.Next(), oit.Next()) {
			return false
		}
	}
	return it.HasNext() == oit.HasNext()
}

// Seq returns a representation of the stream as a sequence
// corresponding to a single traversal of the stream, or nil if the
// stream is empty. The sequence is realized lazily but may be walked
// from any retained node more than once.
func (s *Stream) Seq() seq.Sequence {
	return seqFromIterator(s.Iterator())
}

// String converts the stream to a string representation, consuming
// one traversal.
func (s *Stream) String() string {
	sq := s.Seq()
	if sq == nil {
		return "()"
	}
	return seq.ConvertToString(sq)
}

type streamSeq struct {
	first    interface{}
	it       Iterator
	next     seq.Sequence
	advanced bool
}

func seqFromIterator(it Iterator) seq.Sequence {
	if !it.HasNext() {
		return nil
	}
	return &streamSeq{first: it.Next(), it: it}
}

func (s *streamSeq) First() interface{} {
	return s.first
}

func (s *streamSeq) Next() seq.Sequence {
	if !s.advanced {
		s.next = seqFromIterator(s.it)
		s.advanced = true
	}
	return s.next
}

func (s *streamSeq) String() string {
	return seq.ConvertToString(s)
}

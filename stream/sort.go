package stream

import "sort"

// Comparer may be implemented by element or key types that have no
// natural ordering so they can be used with SortBy and
// SortByDescending. Compare returns a negative value when the
// receiver orders before other, zero when they order equally, and a
// positive value otherwise.
type Comparer interface {
	Compare(other interface{}) int
}

type sortedSource struct {
	up  source
	cmp func(a, b interface{}) int
}

func (s sortedSource) iterator() Iterator {
	return &sortedIterator{up: s.up, cmp: s.cmp}
}

// sortedIterator materializes and sorts the entire upstream on the
// first HasNext or Next call. Each fresh iterator repeats the
// materialize and sort step.
type sortedIterator struct {
	up       source
	cmp      func(a, b interface{}) int
	elems    []interface{}
	cur      int
	realized bool
}

func (i *sortedIterator) materialize() {
	if i.realized {
		return
	}
	for it := i.up.iterator(); it.HasNext(); {
		i.elems = append(i.elems, it.Next())
	}
	sort.Slice(i.elems, func(a, b int) bool {
		return i.cmp(i.elems[a], i.elems[b]) < 0
	})
	i.realized = true
}

func (i *sortedIterator) HasNext() bool {
	i.materialize()
	return i.cur < len(i.elems)
}

func (i *sortedIterator) Next() interface{} {
	if !i.HasNext() {
		panic(errExhausted)
	}
	v := i.elems[i.cur]
	i.cur++
	return v
}

// defaultCompare orders the built in numeric and string types
// naturally, orders nil before everything else, and falls back to the
// Comparer interface. It panics when both arguments are non-nil and
// of different concrete types, or when neither ordering applies.
func defaultCompare(a, b interface{}) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	switch v := a.(type) {
	case int:
		return cmpInt(int64(v), int64(b.(int)))
	case int8:
		return cmpInt(int64(v), int64(b.(int8)))
	case int16:
		return cmpInt(int64(v), int64(b.(int16)))
	case int32:
		return cmpInt(int64(v), int64(b.(int32)))
	case int64:
		return cmpInt(v, b.(int64))
	case uint:
		return cmpUint(uint64(v), uint64(b.(uint)))
	case uint8:
		return cmpUint(uint64(v), uint64(b.(uint8)))
	case uint16:
		return cmpUint(uint64(v), uint64(b.(uint16)))
	case uint32:
		return cmpUint(uint64(v), uint64(b.(uint32)))
	case uint64:
		return cmpUint(v, b.(uint64))
	case float32:
		return cmpFloat(float64(v), float64(b.(float32)))
	case float64:
		return cmpFloat(v, b.(float64))
	case string:
		return cmpString(v, b.(string))
	default:
		return a.(Comparer).Compare(b)
	}
}

func cmpInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpUint(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

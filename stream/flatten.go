package stream

type flatSource struct {
	up source
}

func (s flatSource) iterator() Iterator {
	return &flatIterator{outer: s.up.iterator()}
}

// flatIterator pulls the next inner source from the outer iterator
// only once the current inner iterator is exhausted. Inner elements
// are converted with From, so a nil inner element panics the same way
// From(nil) does.
type flatIterator struct {
	outer Iterator
	inner Iterator
}

func (i *flatIterator) HasNext() bool {
	for {
		if i.inner != nil && i.inner.HasNext() {
			return true
		}
		if !i.outer.HasNext() {
			return false
		}
		i.inner = From(i.outer.Next()).Iterator()
	}
}

func (i *flatIterator) Next() interface{} {
	if !i.HasNext() {
		panic(errExhausted)
	}
	return i.inner.Next()
}

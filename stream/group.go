package stream

import (
	"fmt"

	"jsouthworth.net/go/dyn"
	"jsouthworth.net/go/immutable/hashmap"
	"jsouthworth.net/go/immutable/vector"
	"jsouthworth.net/go/seq"
)

// Group pairs a grouping key with the members that mapped to that
// key, in their original relative order. Groups are produced by
// GroupBy and are immutable. A Group is Iterable so it may itself be
// used as a stream source.
type Group struct {
	key     interface{}
	members *vector.Vector
}

// Key returns the grouping key shared by the members of the group.
func (g *Group) Key() interface{} {
	return g.key
}

// Members returns the members of the group as a persistent vector.
func (g *Group) Members() *vector.Vector {
	return g.members
}

// Length returns the number of members in the group.
func (g *Group) Length() int {
	return g.members.Length()
}

// Iterator returns a fresh iterator over the members of the group.
func (g *Group) Iterator() Iterator {
	return &seqIterator{s: seq.Seq(g.members)}
}

// Seq returns the members of the group as a sequence.
func (g *Group) Seq() seq.Sequence {
	return seq.Seq(g.members)
}

// Equal compares the key and each member to determine if the group is
// equal to the one passed in.
func (g *Group) Equal(o interface{}) bool {
	other, ok := o.(*Group)
	if !ok {
		return false
	}
	return dyn.Equal(g.key, other.key) && g.members.Equal(other.members)
}

// String converts the group to a string representation.
func (g *Group) String() string {
	return fmt.Sprintf("[%v %v]", g.key, g.members)
}

type groupedSource struct {
	up  source
	key func(interface{}) interface{}
}

func (s groupedSource) iterator() Iterator {
	return &groupedIterator{up: s.up, key: s.key}
}

// groupedIterator consumes the entire upstream on the first HasNext
// or Next call, bucketing elements by key and recording the order
// keys are first seen. Each fresh iterator regroups independently.
type groupedIterator struct {
	up       source
	key      func(interface{}) interface{}
	groups   []*Group
	cur      int
	realized bool
}

func (i *groupedIterator) materialize() {
	if i.realized {
		return
	}
	var keys []interface{}
	buckets := hashmap.Empty().AsTransient()
	for it := i.up.iterator(); it.HasNext(); {
		v := it.Next()
		k := i.key(v)
		b, seen := buckets.Find(k)
		if !seen {
			keys = append(keys, k)
			b = vector.Empty().AsTransient()
		}
		buckets = buckets.Assoc(k, b.(*vector.TVector).Append(v))
	}
	for _, k := range keys {
		members := buckets.At(k).(*vector.TVector).AsPersistent()
		i.groups = append(i.groups, &Group{key: k, members: members})
	}
	i.realized = true
}

func (i *groupedIterator) HasNext() bool {
	i.materialize()
	return i.cur < len(i.groups)
}

func (i *groupedIterator) Next() interface{} {
	if !i.HasNext() {
		panic(errExhausted)
	}
	g := i.groups[i.cur]
	i.cur++
	return g
}

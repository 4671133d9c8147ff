// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2016 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

import (
	"cmp"
	"fmt"
)

const (
	// staticDepth is the size of the static array to use for keeping track
	// of the parent stack during treap iteration and insertion.  Since a
	// treap has a very high probability that the tree height is
	// logarithmic, it is exceedingly unlikely that the parent stack will
	// ever exceed this size even for extremely large numbers of items.
	staticDepth = 128
)

// treapNode represents a node in the treap.  A node is never modified once it
// has been linked into a published treap, so it may be shared freely between
// every treap version that reaches it.
type treapNode[T any, P cmp.Ordered] struct {
	version  uint64
	priority P
	item     *T
	left     *treapNode[T, P]
	right    *treapNode[T, P]
}

// newLeaf returns a new childless node stamped with the given version.
func newLeaf[T any, P cmp.Ordered](version uint64, priority P, item *T) *treapNode[T, P] {
	return &treapNode[T, P]{version: version, priority: priority, item: item}
}

// newBranch returns a new node stamped with the given version that links the
// passed children.  Both children must have been created no later than the
// new node.
func newBranch[T any, P cmp.Ordered](version uint64, priority P, item *T,
	left, right *treapNode[T, P]) *treapNode[T, P] {

	if left != nil && left.version > version {
		panic(AssertError(fmt.Sprintf("left child version %d is newer "+
			"than parent version %d", left.version, version)))
	}
	if right != nil && right.version > version {
		panic(AssertError(fmt.Sprintf("right child version %d is newer "+
			"than parent version %d", right.version, version)))
	}
	return &treapNode[T, P]{
		version:  version,
		priority: priority,
		item:     item,
		left:     left,
		right:    right,
	}
}

// parentStack represents a stack of treap nodes, or insertion path steps,
// that are used during iteration and insertion.  It consists of a static
// array for holding the parents and a dynamic overflow slice.  It is
// extremely unlikely the overflow will ever be hit during normal operation,
// however, since a treap's height is probabilistic, the overflow case needs
// to be handled properly.  This approach is used because it is much more
// efficient for the majority case than dynamically allocating heap space
// every time the treap is iterated.
type parentStack[E any] struct {
	index    int
	items    [staticDepth]E
	overflow []E
}

// Len returns the current number of items in the stack.
func (s *parentStack[E]) Len() int {
	return s.index
}

// Pop removes the top item from the stack.  It returns the zero value if the
// stack is empty.
func (s *parentStack[E]) Pop() E {
	var zero E
	if s.index == 0 {
		return zero
	}

	s.index--
	if s.index < staticDepth {
		item := s.items[s.index]
		s.items[s.index] = zero
		return item
	}

	item := s.overflow[s.index-staticDepth]
	s.overflow[s.index-staticDepth] = zero
	return item
}

// Push pushes the passed item onto the top of the stack.
func (s *parentStack[E]) Push(item E) {
	if s.index < staticDepth {
		s.items[s.index] = item
		s.index++
		return
	}

	// This approach is used over append because reslicing the slice to pop
	// the item causes the compiler to make unneeded allocations.  Also,
	// since the max number of items is related to the tree depth which
	// requires expontentially more items to increase, only increase the cap
	// one item at a time.
	index := s.index - staticDepth
	if index+1 > cap(s.overflow) {
		overflow := make([]E, index+1)
		copy(overflow, s.overflow)
		s.overflow = overflow
	}
	s.overflow[index] = item
	s.index++
}

// Copyright (c) 2015-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

import "cmp"

// Iterator represents a forward iterator over the contents of a single
// version of a treap.  The treap version it is associated with can never
// change, so an iterator remains valid no matter how many newer versions are
// derived while it is in use.  Creating another iterator over the same treap
// always produces the same sequence.
type Iterator[T any, P cmp.Ordered] struct {
	next    *treapNode[T, P]              // Subtree to descend into next
	node    *treapNode[T, P]              // The node the iterator is positioned at
	parents parentStack[*treapNode[T, P]] // The stack of parents needed to iterate
	done    bool                          // Whether the iterator is exhausted
}

// Iter returns a new iterator positioned before the smallest item of the
// treap.  The first call to Next positions it at the smallest item.
func (t *Treap[K, T, P]) Iter() *Iterator[T, P] {
	if t == nil {
		return &Iterator[T, P]{done: true}
	}
	return &Iterator[T, P]{next: t.root}
}

// Next moves the iterator to the next item in ascending key order and returns
// false when the iterator is exhausted.
func (iter *Iterator[T, P]) Next() bool {
	if iter.done {
		return false
	}

	// Extend the nodes to traverse by all children to the left of the
	// subtree that is to be visited next.  The node on top of the stack is
	// then the smallest item that has not been visited.
	for node := iter.next; node != nil; node = node.left {
		iter.parents.Push(node)
	}
	iter.next = nil

	iter.node = iter.parents.Pop()
	if iter.node == nil {
		iter.done = true
		return false
	}

	// Everything in the right subtree of the node comes after it and
	// before any of the remaining parents.
	iter.next = iter.node.right
	return true
}

// Item returns the item the iterator is positioned at, or nil when the
// iterator has not been positioned or is exhausted.  The returned item is
// shared with the treap and must not be modified.
func (iter *Iterator[T, P]) Item() *T {
	if iter.node == nil {
		return nil
	}
	return iter.node.item
}

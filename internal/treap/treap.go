// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2016 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

import (
	"cmp"
	"fmt"

	"github.com/btcsuite/btclog"
	"github.com/davecgh/go-spew/spew"
)

// Treap represents a versioned treap data structure which is used to hold
// ordered items using a combination of binary search tree and heap semantics.
// It is a self-organizing and randomized data structure that doesn't require
// complex operations to maintain balance.  Search and insert operations are
// O(log n) in expectation.
//
// All operations which result in modifying the treap return a new version of
// the treap with only the nodes on the path to the modified item replaced.
// All other nodes are shared with the previous version.  Readers can simply
// hold their existing pointer as a snapshot since the treap it points to is
// never modified.  The old nodes only remain allocated until there are no
// longer any references to them.
//
// Every treap derived from the same empty treap shares a Lineage which stamps
// each replaced node with a version that is newer than any other stamp in the
// lineage.  A node therefore always carries a version at least as new as
// every node below it.
type Treap[K, T any, P cmp.Ordered] struct {
	version uint64
	count   int
	lineage Lineage
	compare func(a, b K) int
	keyOf   func(item *T) K
	root    *treapNode[T, P]
}

// insertStep is a node on the path from the root to an insertion point along
// with the side of the node the path continued on.
type insertStep[T any, P cmp.Ordered] struct {
	node *treapNode[T, P]
	left bool
}

// New returns a new empty treap with its own lineage.  The compare function
// must define a total order over keys and keyOf must return the key an item is
// ordered by.
func New[K, T any, P cmp.Ordered](compare func(a, b K) int, keyOf func(item *T) K) *Treap[K, T, P] {
	return NewWithLineage[K, T, P](compare, keyOf, NewLineage())
}

// NewWithLineage returns a new empty treap whose versions are stamped by the
// passed lineage.
func NewWithLineage[K, T any, P cmp.Ordered](compare func(a, b K) int,
	keyOf func(item *T) K, lineage Lineage) *Treap[K, T, P] {

	switch {
	case compare == nil:
		panic(treapError(ErrInvalidConfig, "treap requires a key "+
			"comparison function"))
	case keyOf == nil:
		panic(treapError(ErrInvalidConfig, "treap requires a key "+
			"accessor function"))
	case lineage == nil:
		panic(treapError(ErrInvalidConfig, "treap requires a lineage"))
	}

	return &Treap[K, T, P]{
		lineage: lineage,
		compare: compare,
		keyOf:   keyOf,
	}
}

// Compare returns -1, 0, or +1 depending on whether a is less than, equal to,
// or greater than b.  It panics with ErrIncomparable when either key is a NaN
// since such keys have no place in a total order.
func Compare[K cmp.Ordered](a, b K) int {
	if isNaN(a) || isNaN(b) {
		str := fmt.Sprintf("keys %v and %v have no defined order", a, b)
		panic(treapError(ErrIncomparable, str))
	}
	return cmp.Compare(a, b)
}

// isNaN reports whether x is a NaN without requiring a math import.
func isNaN[K cmp.Ordered](x K) bool {
	return x != x
}

// Len returns the number of items stored in the treap.
func (t *Treap[K, T, P]) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// Version returns the version stamp of the treap.  An empty treap that has
// never been appended to has version zero.
func (t *Treap[K, T, P]) Version() uint64 {
	if t == nil {
		return 0
	}
	return t.version
}

// Lineage returns the lineage shared by the treap and every treap derived
// from it.
func (t *Treap[K, T, P]) Lineage() Lineage {
	return t.lineage
}

// get returns the treap node that contains the passed key.  It will return nil
// when the key does not exist.
func (t *Treap[K, T, P]) get(key K) *treapNode[T, P] {
	if t == nil {
		return nil
	}

	for node := t.root; node != nil; {
		if node.version > t.version {
			panic(AssertError(fmt.Sprintf("node version %d is newer "+
				"than treap version %d", node.version, t.version)))
		}

		// Traverse left or right depending on the result of the
		// comparison.
		compareResult := t.compare(key, t.keyOf(node.item))
		if compareResult < 0 {
			node = node.left
			continue
		}
		if compareResult > 0 {
			node = node.right
			continue
		}

		// The key exists.
		return node
	}

	// A nil node was reached which means the key does not exist.
	return nil
}

// Has returns whether or not the passed key exists.
func (t *Treap[K, T, P]) Has(key K) bool {
	return t.get(key) != nil
}

// Find returns the shared item stored for the passed key.  It returns nil when
// the key does not exist.  The returned item must not be modified.
func (t *Treap[K, T, P]) Find(key K) *T {
	if node := t.get(key); node != nil {
		return node.item
	}
	return nil
}

// PriorityOf returns the priority the passed key was first inserted with.
func (t *Treap[K, T, P]) PriorityOf(key K) (P, bool) {
	if node := t.get(key); node != nil {
		return node.priority, true
	}
	var zero P
	return zero, false
}

// Append returns a new version of the treap with the passed item inserted.
// When an item with the same key already exists it is replaced and the key
// keeps the priority it was first inserted with, so the passed priority is
// only used for new keys.
func (t *Treap[K, T, P]) Append(priority P, item T) *Treap[K, T, P] {
	return t.insert(item, priority, nil)
}

// AppendFunc returns a new version of the treap with the passed item
// inserted.  The makePriority function is only invoked, exactly once, when
// the item's key does not already exist in the treap.
func (t *Treap[K, T, P]) AppendFunc(item T, makePriority func(key K) P) *Treap[K, T, P] {
	var zero P
	return t.insert(item, zero, makePriority)
}

// insert implements Append and AppendFunc.  The priority for a new leaf is
// taken from makePriority when it is not nil.
func (t *Treap[K, T, P]) insert(item T, priority P, makePriority func(key K) P) *Treap[K, T, P] {
	newItem := &item
	key := t.keyOf(newItem)

	// Reject a key without a defined order before a version is consumed.
	// An empty treap would otherwise store it without comparing it to
	// anything.
	if t.compare(key, key) != 0 {
		panic(treapError(ErrIncomparable, "key does not compare equal "+
			"to itself"))
	}

	newVersion := t.lineage.Next()
	if newVersion <= t.version {
		panic(AssertError(fmt.Sprintf("lineage issued version %d which "+
			"is not newer than treap version %d", newVersion,
			t.version)))
	}

	// The node is the root of the tree if there isn't already one.
	if t.root == nil {
		if makePriority != nil {
			priority = makePriority(key)
		}
		root := newLeaf(newVersion, priority, newItem)
		t.traceAppend(newVersion, newItem, true, 0)
		return t.derive(newVersion, 1, root)
	}

	// Find the binary tree insertion point while recording the path to it.
	// The nodes on the path are never modified.  Instead, each of them is
	// replaced by a new node at the new version as the path is unwound so
	// every subtree off the path is shared with the previous version.
	var path parentStack[insertStep[T, P]]
	node := t.root
	for node != nil {
		if node.version >= newVersion {
			panic(AssertError(fmt.Sprintf("node version %d is not "+
				"older than new version %d", node.version,
				newVersion)))
		}

		compareResult := t.compare(key, t.keyOf(node.item))
		if compareResult < 0 {
			path.Push(insertStep[T, P]{node: node, left: true})
			node = node.left
			continue
		}
		if compareResult > 0 {
			path.Push(insertStep[T, P]{node: node, left: false})
			node = node.right
			continue
		}
		break
	}

	// When the key already exists, replace only the item.  The priority is
	// never drawn again for an existing key, which also means no rotations
	// can be needed below.
	var child *treapNode[T, P]
	var added int
	if node != nil {
		child = newBranch(newVersion, node.priority, newItem, node.left,
			node.right)
	} else {
		if makePriority != nil {
			priority = makePriority(key)
		}
		child = newLeaf(newVersion, priority, newItem)
		added = 1
	}

	// Replace the ancestors up to and including the root while performing
	// any rotations needed to maintain the max-heap.  A rotation moves the
	// rebuilt child above its parent, so at most one rotation happens per
	// level.
	var rotations int
	for path.Len() > 0 {
		step := path.Pop()
		parent := step.node
		if step.left {
			rebuilt := newBranch(newVersion, parent.priority,
				parent.item, child, parent.right)
			if child.priority > parent.priority {
				rebuilt = rotateRight(rebuilt, newVersion)
				traceRotation(newVersion, "right")
				rotations++
			}
			child = rebuilt
			continue
		}

		rebuilt := newBranch(newVersion, parent.priority, parent.item,
			parent.left, child)
		if child.priority > parent.priority {
			rebuilt = rotateLeft(rebuilt, newVersion)
			traceRotation(newVersion, "left")
			rotations++
		}
		child = rebuilt
	}

	t.traceAppend(newVersion, newItem, added == 1, rotations)
	return t.derive(newVersion, t.count+added, child)
}

// derive returns a new treap in the same lineage with the passed parameters.
func (t *Treap[K, T, P]) derive(version uint64, count int, root *treapNode[T, P]) *Treap[K, T, P] {
	return &Treap[K, T, P]{
		version: version,
		count:   count,
		lineage: t.lineage,
		compare: t.compare,
		keyOf:   t.keyOf,
		root:    root,
	}
}

// traceAppend logs the outcome of an insert when trace logging is enabled.
func (t *Treap[K, T, P]) traceAppend(version uint64, item *T, added bool, rotations int) {
	if log.Level() > btclog.LevelTrace {
		return
	}
	op := "Replaced"
	if added {
		op = "Inserted"
	}
	log.Tracef("%s item at version %d with %d rotations: %v", op,
		version, rotations, newLogClosure(func() string {
			return spew.Sdump(item)
		}))
}

// traceRotation logs a rotation performed while inserting at the passed
// version.
func traceRotation(version uint64, dir string) {
	log.Tracef("Rotated %s at version %d", dir, version)
}

// rotateLeft promotes the right child of the passed node to take its place.
// Both participating nodes are replaced at the passed version while all
// three grandchildren are shared.
func rotateLeft[T any, P cmp.Ordered](node *treapNode[T, P], version uint64) *treapNode[T, P] {
	right := node.right
	if right == nil {
		panic(AssertError("left rotation of a node without a right child"))
	}
	demoted := newBranch(version, node.priority, node.item, node.left,
		right.left)
	return newBranch(version, right.priority, right.item, demoted,
		right.right)
}

// rotateRight promotes the left child of the passed node to take its place.
// Both participating nodes are replaced at the passed version while all
// three grandchildren are shared.
func rotateRight[T any, P cmp.Ordered](node *treapNode[T, P], version uint64) *treapNode[T, P] {
	left := node.left
	if left == nil {
		panic(AssertError("right rotation of a node without a left child"))
	}
	demoted := newBranch(version, node.priority, node.item, left.right,
		node.right)
	return newBranch(version, left.priority, left.item, left.left,
		demoted)
}

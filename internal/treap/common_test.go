// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2016 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

import (
	"cmp"
	"errors"
	"math/rand/v2"
	"testing"
)

// intTreap is a treap of bare int keys with int priorities.
type intTreap = Treap[int, int, int]

// kv is a key/value item ordered by its key alone.
type kv struct {
	k int
	v string
}

// kvTreap is a treap of kv items with int priorities.
type kvTreap = Treap[int, kv, int]

// newIntTreap returns an empty treap of bare int keys.
func newIntTreap() *intTreap {
	return New[int, int, int](Compare[int], func(k *int) int { return *k })
}

// newKVTreap returns an empty treap of kv items.
func newKVTreap() *kvTreap {
	return New[int, kv, int](Compare[int], func(item *kv) int { return item.k })
}

// isHeap tests whether the subtree rooted at the node meets the max-heap
// invariant.
func (n *treapNode[T, P]) isHeap() bool {
	if n == nil {
		return true
	}

	left := n.left == nil || n.left.priority <= n.priority && n.left.isHeap()
	right := n.right == nil || n.right.priority <= n.priority && n.right.isHeap()

	return left && right
}

// versionsMonotonic tests whether no node in the subtree rooted at the node
// links to a node with a newer version.
func (n *treapNode[T, P]) versionsMonotonic() bool {
	if n == nil {
		return true
	}

	if n.left != nil && n.left.version > n.version {
		return false
	}
	if n.right != nil && n.right.version > n.version {
		return false
	}
	return n.left.versionsMonotonic() && n.right.versionsMonotonic()
}

// depth returns the number of nodes on the longest path from the node to a
// leaf.
func (n *treapNode[T, P]) depth() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.depth(), n.right.depth())
}

// collectNodes adds every node in the subtree rooted at the node to the
// passed set.
func (n *treapNode[T, P]) collectNodes(nodes map[*treapNode[T, P]]struct{}) {
	if n == nil {
		return
	}
	nodes[n] = struct{}{}
	n.left.collectNodes(nodes)
	n.right.collectNodes(nodes)
}

// checkInvariants ensures the passed treap is ordered by key, is a max-heap by
// priority, has monotonic versions and reports a length that matches its
// contents.
func checkInvariants[K, T any, P cmp.Ordered](t *testing.T, label string, tr *Treap[K, T, P]) {
	t.Helper()

	if !tr.root.isHeap() {
		t.Fatalf("%s: treap is not a max-heap", label)
	}
	if !tr.root.versionsMonotonic() {
		t.Fatalf("%s: treap versions are not monotonic", label)
	}
	if tr.root != nil && tr.root.version > tr.version {
		t.Fatalf("%s: root version %d is newer than treap version %d",
			label, tr.root.version, tr.version)
	}

	var numIterated int
	var prev *T
	for item := range tr.All() {
		if prev != nil && tr.compare(tr.keyOf(prev), tr.keyOf(item)) >= 0 {
			t.Fatalf("%s: keys are not strictly increasing at index %d",
				label, numIterated)
		}
		prev = item
		numIterated++
	}
	if numIterated != tr.Len() {
		t.Fatalf("%s: unexpected iterate count - got %d, want %d",
			label, numIterated, tr.Len())
	}
}

// assertPanicCode ensures the passed function panics with an Error carrying
// the passed code.
func assertPanicCode(t *testing.T, code ErrorCode, f func()) {
	t.Helper()

	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("did not panic - want %v", code)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("unexpected panic value %v (%T)", r, r)
		}
		var tErr Error
		if !errors.As(err, &tErr) {
			t.Fatalf("unexpected panic error type %T - want Error", err)
		}
		if tErr.ErrorCode != code {
			t.Fatalf("unexpected error code - got %v, want %v",
				tErr.ErrorCode, code)
		}
	}()
	f()
}

// assertPanicAssert ensures the passed function panics with an AssertError.
func assertPanicAssert(t *testing.T, f func()) {
	t.Helper()

	defer func() {
		t.Helper()
		r := recover()
		if _, ok := r.(AssertError); !ok {
			t.Fatalf("unexpected panic value %v (%T) - want "+
				"AssertError", r, r)
		}
	}()
	f()
}

// TestParentStack ensures the parentStack functionality works as intended.
func TestParentStack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		numNodes int
	}{
		{numNodes: 1},
		{numNodes: staticDepth},
		{numNodes: staticDepth + 1}, // Test dynamic code paths
	}

testLoop:
	for i, test := range tests {
		nodes := make([]*treapNode[int, int], 0, test.numNodes)
		for j := 0; j < test.numNodes; j++ {
			key := j
			nodes = append(nodes, newLeaf(0, 0, &key))
		}

		// Push all of the nodes onto the parent stack while testing
		// various stack properties.
		stack := &parentStack[*treapNode[int, int]]{}
		for j, node := range nodes {
			stack.Push(node)

			// Ensure the stack length is the expected value.
			if stack.Len() != j+1 {
				t.Errorf("Len #%d (%d): unexpected stack "+
					"length - got %d, want %d", i, j,
					stack.Len(), j+1)
				continue testLoop
			}
		}

		// Ensure each popped node is the expected one.
		for j := 0; j < len(nodes); j++ {
			node := stack.Pop()
			expected := nodes[len(nodes)-j-1]
			if node != expected {
				t.Errorf("At #%d (%d): mismatched node - "+
					"got %v, want %v", i, j, node, expected)
				continue testLoop
			}
		}

		// Ensure the stack is now empty.
		if stack.Len() != 0 {
			t.Errorf("Len #%d: stack is not empty - got %d", i,
				stack.Len())
			continue testLoop
		}

		// Ensure attempting to pop a node from an empty stack returns
		// nil.
		if node := stack.Pop(); node != nil {
			t.Errorf("Pop #%d: did not give back nil - got %v", i,
				node)
			continue testLoop
		}
	}
}

// TestNewBranchVersions ensures a branch can not link a child that is newer
// than itself.
func TestNewBranchVersions(t *testing.T) {
	t.Parallel()

	key := 1
	older := newLeaf(1, 0, &key)
	newer := newLeaf(3, 0, &key)

	if node := newBranch(2, 0, &key, older, nil); node.left != older {
		t.Fatalf("newBranch: left child was not linked")
	}
	assertPanicAssert(t, func() { newBranch(2, 0, &key, newer, nil) })
	assertPanicAssert(t, func() { newBranch(2, 0, &key, nil, newer) })
}

// testRand returns a deterministic random number generator for tests.
func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(0, 0))
}

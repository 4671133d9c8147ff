// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vertreap

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/btcsuite/vertreap/priority"
	"github.com/stretchr/testify/require"
)

func TestSetBasic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		keys []string
		want []string
	}{
		{name: "empty"},
		{name: "single", keys: []string{"a"}, want: []string{"a"}},
		{
			name: "duplicates",
			keys: []string{"b", "a", "b", "c", "a"},
			want: []string{"a", "b", "c"},
		},
		{
			name: "reverse",
			keys: []string{"e", "d", "c", "b", "a"},
			want: []string{"a", "b", "c", "d", "e"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := NewSet[string]()
			for _, k := range test.keys {
				s = s.Append(k)
			}
			require.Equal(t, len(test.want), s.Len())
			require.Equal(t, test.want, slices.Collect(s.All()))
			for _, k := range test.want {
				require.True(t, s.Contains(k), "missing key %q", k)
			}
			require.False(t, s.Contains("zz"))
		})
	}
}

func TestSetPersistence(t *testing.T) {
	t.Parallel()

	empty := NewSetWithThreadRand[int, uint16]()
	s1 := empty.Append(5).Append(3)
	s2 := s1.Append(8)
	s3 := s1.Append(1)

	require.Empty(t, slices.Collect(empty.All()))
	require.Equal(t, []int{3, 5}, slices.Collect(s1.All()))
	require.Equal(t, []int{3, 5, 8}, slices.Collect(s2.All()))
	require.Equal(t, []int{1, 3, 5}, slices.Collect(s3.All()))
	require.Greater(t, s3.Version(), s2.Version())
	require.Greater(t, s2.Version(), s1.Version())
}

func TestSetAppendWithRand(t *testing.T) {
	t.Parallel()

	build := func() Set[int, uint64] {
		r := rand.New(rand.NewPCG(9, 9))
		s := NewSet[int]()
		for i := 0; i < 200; i++ {
			s = s.AppendWithRand(r.IntN(100), r)
		}
		return s
	}

	a, b := build(), build()
	require.Equal(t, slices.Collect(a.All()), slices.Collect(b.All()))
	for k := range a.All() {
		pa, _ := a.PriorityOf(k)
		pb, _ := b.PriorityOf(k)
		require.Equal(t, pa, pb, "priority of key %d", k)
	}

	// Re-appending an existing key keeps its priority and does not draw
	// from the generator.
	r := rand.New(rand.NewPCG(1, 2))
	s := NewSet[int]().AppendWithRand(7, r)
	before, _ := s.PriorityOf(7)
	state := r.Uint64()
	r = rand.New(rand.NewPCG(1, 2))
	r.Uint64()
	s = s.AppendWithRand(7, r)
	after, _ := s.PriorityOf(7)
	require.Equal(t, before, after)
	require.Equal(t, state, r.Uint64())
}

func TestSetAppendWithPriority(t *testing.T) {
	t.Parallel()

	s := NewSetWithThreadRand[int, int8]()
	s = s.AppendWithPriority(10, 5).AppendWithPriority(20, 3)
	s = s.AppendWithPriority(1, 8).AppendWithPriority(5, 1)
	s = s.AppendWithPriority(100, 5)

	require.Equal(t, []int{1, 3, 5, 8}, slices.Collect(s.All()))
	p, ok := s.PriorityOf(5)
	require.True(t, ok)
	require.Equal(t, int8(10), p)
	_, ok = s.PriorityOf(4)
	require.False(t, ok)
}

func TestSetHasher(t *testing.T) {
	t.Parallel()

	empty := NewSetWithHasher[uint64](priority.Uint64Key,
		priority.WithHashKey(1, 2))
	h := priority.NewHash(priority.Uint64Key, priority.WithHashKey(1, 2))

	s := empty
	for i := uint64(0); i < 64; i++ {
		s = s.Append(i * 3)
	}
	for k := range s.All() {
		p, ok := s.PriorityOf(k)
		require.True(t, ok)
		require.Equal(t, h.MakePriority(k), p)
	}
}

func TestSetCustomOrder(t *testing.T) {
	t.Parallel()

	// Case insensitive ordering treats keys differing only in case as the
	// same key, so the most recent spelling wins.
	s := NewSetFunc[string, uint64](func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	}, priority.NewSeeded[string, uint64](3, 4))
	for _, k := range []string{"Beta", "alpha", "GAMMA", "ALPHA", "beta"} {
		s = s.Append(k)
	}
	require.Equal(t, []string{"ALPHA", "beta", "GAMMA"},
		slices.Collect(s.All()))
	require.True(t, s.Contains("Gamma"))
}

func TestSetIterators(t *testing.T) {
	t.Parallel()

	var zero Set[int, uint64]
	require.False(t, zero.Iter().Next())
	require.Equal(t, 0, zero.Len())
	require.False(t, zero.Contains(1))
	for _, appendFn := range []func(){
		func() { zero.Append(1) },
		func() { zero.AppendWithPriority(1, 1) },
		func() { zero.AppendWithRand(1, rand.New(rand.NewPCG(0, 0))) },
	} {
		requirePanicCode(t, ErrInvalidConfig, appendFn)
	}

	s := NewSetWithRand[int, uint32](rand.NewPCG(6, 6))
	for _, k := range []int{4, 2, 6, 0, 8} {
		s = s.Append(k)
	}

	iter := s.Iter()
	require.Equal(t, 0, iter.Key())
	var keys []int
	for iter.Next() {
		keys = append(keys, iter.Key())
	}
	require.Equal(t, []int{0, 2, 4, 6, 8}, keys)
	require.False(t, iter.Next())

	var visited []int
	s.ForEach(func(k int) bool {
		visited = append(visited, k)
		return len(visited) < 2
	})
	require.Equal(t, []int{0, 2}, visited)
}

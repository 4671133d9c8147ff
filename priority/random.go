// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package priority

import (
	"math/rand/v2"
	"sync"
)

// ThreadRandom is a Generator that draws priorities from the runtime's
// per-thread random source.  It has no state, is safe for concurrent use and
// its zero value is ready for use.
type ThreadRandom[K any, P Priority] struct{}

// Ensure ThreadRandom implements the Generator interface.
var _ Generator[string, uint64] = ThreadRandom[string, uint64]{}

// NewThreadRandom returns a Generator backed by the runtime's per-thread
// random source.
func NewThreadRandom[K any, P Priority]() ThreadRandom[K, P] {
	return ThreadRandom[K, P]{}
}

// MakePriority returns a uniformly distributed priority.  The key is ignored.
func (ThreadRandom[K, P]) MakePriority(K) P {
	return FromUint64[P](rand.Uint64())
}

// Rand is a Generator that draws priorities from a caller supplied random
// source.  Given a source with a fixed seed and a fixed sequence of
// insertions, the produced priorities, and therefore the shape of the treap,
// are reproducible.
type Rand[K any, P Priority] struct {
	mtx sync.Mutex
	rng *rand.Rand
}

// Ensure Rand implements the Generator interface.
var _ Generator[string, uint64] = (*Rand[string, uint64])(nil)

// NewRand returns a Generator that draws priorities from the passed source.
// The source must not be used by anything else afterwards or the sequence of
// priorities will no longer be reproducible.
func NewRand[K any, P Priority](src rand.Source) *Rand[K, P] {
	if src == nil {
		panic("priority: nil random source")
	}
	log.Debugf("Created random priority generator from %T", src)
	return &Rand[K, P]{rng: rand.New(src)}
}

// NewSeeded returns a Generator that draws priorities from a PCG source
// initialized with the passed seed.
func NewSeeded[K any, P Priority](seed1, seed2 uint64) *Rand[K, P] {
	return NewRand[K, P](rand.NewPCG(seed1, seed2))
}

// MakePriority returns the next priority from the underlying source.  The key
// is ignored.
//
// This function is safe for concurrent access.
func (g *Rand[K, P]) MakePriority(K) P {
	g.mtx.Lock()
	v := g.rng.Uint64()
	g.mtx.Unlock()
	return FromUint64[P](v)
}

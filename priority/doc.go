// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package priority provides the strategies used to assign treap priorities to
newly inserted keys.

Three generators are provided:

  - ThreadRandom draws from the runtime's per-thread random source
  - Rand draws from a caller supplied, typically seeded, random source
  - Hash derives the priority from a keyed hash of the key itself

The priorities only affect the expected balance of a treap.  Any generator,
including a constant one, produces a valid treap.
*/
package priority

// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package priority

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/dchest/siphash"
	"golang.org/x/crypto/blake2b"
)

// KeyEncoder appends the byte representation of a key to dst and returns the
// extended slice.  Two keys that are equal must encode to the same bytes.
type KeyEncoder[K any] func(dst []byte, key K) []byte

// StringKey is a KeyEncoder for string keys.
func StringKey(dst []byte, key string) []byte {
	return append(dst, key...)
}

// BytesKey is a KeyEncoder for byte slice keys.
func BytesKey(dst []byte, key []byte) []byte {
	return append(dst, key...)
}

// Uint64Key is a KeyEncoder for uint64 keys.
func Uint64Key(dst []byte, key uint64) []byte {
	return binary.BigEndian.AppendUint64(dst, key)
}

// Int64Key is a KeyEncoder for int64 keys.
func Int64Key(dst []byte, key int64) []byte {
	return binary.BigEndian.AppendUint64(dst, uint64(key))
}

// HashFunc identifies the keyed hash function a Hash generator uses.
type HashFunc int

const (
	// SipHash selects SipHash-2-4.
	SipHash HashFunc = iota

	// Blake2b selects keyed BLAKE2b with a 64-bit digest.
	Blake2b
)

// String returns the HashFunc as a human-readable name.
func (f HashFunc) String() string {
	switch f {
	case SipHash:
		return "SipHash-2-4"
	case Blake2b:
		return "BLAKE2b-64"
	}
	return fmt.Sprintf("Unknown HashFunc (%d)", int(f))
}

// hashConfig houses the settings a Hash generator is created with.
type hashConfig struct {
	fn       HashFunc
	key      [16]byte
	fixedKey bool
}

// HashOption is a functional option that modifies a Hash generator.
type HashOption func(*hashConfig)

// WithBlake2b selects keyed BLAKE2b instead of the default SipHash-2-4.
func WithBlake2b() HashOption {
	return func(cfg *hashConfig) {
		cfg.fn = Blake2b
	}
}

// WithHashKey uses the passed hash key instead of one drawn from the system
// entropy source.
func WithHashKey(k0, k1 uint64) HashOption {
	return func(cfg *hashConfig) {
		binary.LittleEndian.PutUint64(cfg.key[0:8], k0)
		binary.LittleEndian.PutUint64(cfg.key[8:16], k1)
		cfg.fixedKey = true
	}
}

// Hash is a Generator that derives the priority of a key from a keyed hash of
// its byte representation.  The hash key is drawn once when the generator is
// created, so the priority of a key is a pure function of the generator and
// the key.  Inserting the same key into any treap that uses the same
// generator always results in the same priority.
type Hash[K any] struct {
	encode KeyEncoder[K]
	fn     HashFunc
	k0, k1 uint64
	key    [16]byte
}

// Ensure Hash implements the Generator interface.
var _ Generator[string, uint64] = (*Hash[string])(nil)

// NewHash returns a Generator that hashes keys encoded by the passed encoder.
// It panics when the system entropy source can not provide a hash key since a
// host without entropy can not produce unpredictable priorities.
func NewHash[K any](encode KeyEncoder[K], opts ...HashOption) *Hash[K] {
	if encode == nil {
		panic("priority: nil key encoder")
	}

	var cfg hashConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.fixedKey {
		if _, err := rand.Read(cfg.key[:]); err != nil {
			panic(fmt.Sprintf("priority: unable to read hash key: %v",
				err))
		}
	}

	log.Debugf("Created keyed hash priority generator using %v", cfg.fn)
	return &Hash[K]{
		encode: encode,
		fn:     cfg.fn,
		k0:     binary.LittleEndian.Uint64(cfg.key[0:8]),
		k1:     binary.LittleEndian.Uint64(cfg.key[8:16]),
		key:    cfg.key,
	}
}

// MakePriority returns the keyed hash of the passed key.
//
// This function is safe for concurrent access.
func (h *Hash[K]) MakePriority(key K) uint64 {
	var buf [64]byte
	data := h.encode(buf[:0], key)

	if h.fn != Blake2b {
		return siphash.Hash(h.k0, h.k1, data)
	}

	hasher, err := blake2b.New(8, h.key[:])
	if err != nil {
		panic(fmt.Sprintf("priority: unable to create hasher: %v", err))
	}
	hasher.Write(data)
	var sum [8]byte
	return binary.LittleEndian.Uint64(hasher.Sum(sum[:0]))
}

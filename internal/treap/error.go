// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

import (
	"fmt"
)

// ErrorCode identifies a kind of error.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrVersionOverflow indicates a lineage has issued every version
	// stamp representable by a uint64 and can not stamp another node.
	ErrVersionOverflow ErrorCode = iota

	// ErrIncomparable indicates two keys were found to have no defined
	// order relative to each other, such as a NaN floating point key.
	ErrIncomparable

	// ErrInvalidConfig indicates a treap was requested with a
	// configuration that can not produce a usable treap.
	ErrInvalidConfig

	// numErrorCodes is the maximum error code number used in tests.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrVersionOverflow: "ErrVersionOverflow",
	ErrIncomparable:    "ErrIncomparable",
	ErrInvalidConfig:   "ErrInvalidConfig",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error identifies a treap contract violation.  ErrVersionOverflow and
// ErrIncomparable are never returned; they are raised with panic since the
// treap can not continue in a consistent state once either occurs.
type Error struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// treapError creates an Error given a set of arguments.
func treapError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}

// AssertError identifies an error that indicates an internal code consistency
// issue and should be treated as a critical and unrecoverable error.
type AssertError string

// Error returns the assertion error as a human-readable string and satisfies
// the error interface.
func (e AssertError) Error() string {
	return "assertion failed: " + string(e)
}

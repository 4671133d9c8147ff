// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vertreap

import (
	"fmt"

	"github.com/btcsuite/vertreap/internal/treap"
)

// ErrorCode identifies a kind of error.
type ErrorCode = treap.ErrorCode

// Error identifies a treap contract violation.  Only configuration errors are
// returned.  Version overflow and incomparable keys are raised with panic and
// may be recovered as an Error for inspection.
type Error = treap.Error

// AssertError identifies an internal consistency failure.  It is only ever
// raised with panic.
type AssertError = treap.AssertError

// These constants are used to identify a specific Error.
const (
	// ErrVersionOverflow indicates a lineage has exhausted its version
	// stamps.
	ErrVersionOverflow = treap.ErrVersionOverflow

	// ErrIncomparable indicates two keys have no defined order.
	ErrIncomparable = treap.ErrIncomparable

	// ErrInvalidConfig indicates a collection was requested with an
	// unusable configuration.
	ErrInvalidConfig = treap.ErrInvalidConfig
)

// uninitializedError returns the Error raised when appending to a zero value
// collection of the named kind.
func uninitializedError(kind string) Error {
	return configError(fmt.Sprintf("append to a zero value %[1]s; create "+
		"the %[1]s with New%[1]s, New%[1]sFunc or New%[1]sWithConfig",
		kind))
}

// configError creates an Error with the ErrInvalidConfig code.
func configError(desc string) Error {
	return Error{ErrorCode: ErrInvalidConfig, Description: desc}
}

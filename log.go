// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vertreap

import (
	"github.com/btcsuite/btclog"
	"github.com/btcsuite/vertreap/internal/treap"
	"github.com/btcsuite/vertreap/priority"
)

// log is a logger that is initialized with no output filters.  This
// means the package will not perform any logging by default until the caller
// requests it.
var log btclog.Logger

// The default amount of logging is none.
func init() {
	DisableLog()
}

// DisableLog disables all library log output.  Logging output is disabled
// by default until UseLogger is called.
func DisableLog() {
	log = btclog.Disabled
	treap.DisableLog()
	priority.DisableLog()
}

// UseLogger uses a specified Logger to output package logging info.  The
// logger is also used by the underlying treap, which logs every append and
// rotation at the trace level, and by the priority generators.
func UseLogger(logger btclog.Logger) {
	log = logger
	treap.UseLogger(logger)
	priority.UseLogger(logger)
}

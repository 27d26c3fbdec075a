// Copyright 2026 The LLVM-China Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ld

import (
	"sync"

	"github.com/pattyshack/gt/parseutil"
)

// ErrorReporter collects non-fatal link errors. Reporting an error
// never unwinds the caller; relocation processing continues and the
// host decides afterwards whether the accumulated errors abort output
// emission.
//
// Relocations may be applied concurrently across disjoint targets, so
// the reporter is safe for concurrent use.
type ErrorReporter struct {
	mu      sync.Mutex
	emitter parseutil.Emitter
}

// Errorf records an error message attributed to the named object file.
func (r *ErrorReporter) Errorf(file string, format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.emitter.Emit(parseutil.Location{FileName: file}, format, args...)
}

// HasErrors reports whether any error has been recorded.
func (r *ErrorReporter) HasErrors() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.emitter.HasErrors()
}

// Errors returns the recorded errors in emission order.
func (r *ErrorReporter) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.emitter.Errors()
}

// ErrorCount returns the number of recorded errors.
func (r *ErrorReporter) ErrorCount() int {
	return len(r.Errors())
}

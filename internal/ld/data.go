// Copyright 2026 The LLVM-China Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ld

import (
	"sync"

	"github.com/LLVM-China/avr-lld/internal/sym"
)

// relocsym resolves and applies the relocations of one symbol. All
// addresses are final by the time it runs: the resolved value is the
// referenced symbol's address plus the addend, minus the reference
// point for PC-relative classes. Bad relocation records and unknown
// types are reported and skipped; the link continues.
func relocsym(target *Target, rep *ErrorReporter, s *sym.Symbol) {
	for ri := range s.R {
		r := &s.R[ri]
		off := r.Off
		if off < 0 || int64(off) >= int64(len(s.P)) {
			rname := ""
			if r.Sym != nil {
				rname = r.Sym.Name
			}
			rep.Errorf(s.File, "invalid relocation %s: offset %d not in [0,%d)", rname, off, len(s.P))
			continue
		}

		expr := target.thearch.RelExpr(rep, r.Type, r.Sym, s.File, s.P[off:])
		if expr == sym.ExprNone {
			// Already reported by the classifier.
			continue
		}

		var o int64
		if r.Sym != nil {
			o = r.Sym.Value
		}
		o += r.Add
		if expr == sym.ExprPC {
			o -= s.Value + int64(off)
		}

		target.thearch.Relocate(rep, s.File, s.P[off:], s.Value+int64(off), r.Type, o)
	}
}

// RelocSym applies the relocations of a single symbol.
func RelocSym(target *Target, rep *ErrorReporter, s *sym.Symbol) {
	relocsym(target, rep, s)
}

// Reloc applies relocations for all symbols. Each symbol's data is
// disjoint from every other's, so symbols are processed in parallel;
// the reporter serializes diagnostics itself.
func Reloc(target *Target, rep *ErrorReporter, syms []*sym.Symbol) {
	var wg sync.WaitGroup
	wg.Add(len(syms))
	for _, s := range syms {
		go func(s *sym.Symbol) {
			relocsym(target, rep, s)
			wg.Done()
		}(s)
	}
	wg.Wait()
}

// Copyright 2026 The LLVM-China Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

import (
	"github.com/LLVM-China/avr-lld/internal/objabi"
)

// Reloc is a single deferred reference inside a symbol's data that
// must be patched once layout is known. It is produced by the symbol
// resolution phase and consumed exactly once when the relocation is
// applied.
type Reloc struct {
	Off  int32            // offset into the owning symbol's data
	Type objabi.RelocType // relocation type code from the object file
	Add  int64            // addend
	Sym  *Symbol          // referenced symbol
}

// RelExpr classifies how a relocated value is computed before it is
// handed to the architecture backend for encoding.
type RelExpr uint8

const (
	// ExprNone marks a relocation whose type the backend does not
	// know. The relocation is skipped after being reported.
	ExprNone RelExpr = iota

	// ExprAbs relocations encode the resolved symbol address plus
	// addend directly.
	ExprAbs

	// ExprPC relocations encode an offset from the address of the
	// referencing instruction; the reference point is subtracted
	// before encoding.
	ExprPC
)

func (e RelExpr) String() string {
	switch e {
	case ExprAbs:
		return "ExprAbs"
	case ExprPC:
		return "ExprPC"
	}
	return "ExprNone"
}

// Copyright 2026 The LLVM-China Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ld

import (
	"github.com/LLVM-China/avr-lld/internal/objabi"
	"github.com/LLVM-China/avr-lld/internal/sym"
	"github.com/LLVM-China/avr-lld/internal/sys"
)

// Arch holds the architecture dependent parts of the linker: how to
// classify a relocation and how to fold a resolved value into machine
// code. One implementation exists per supported instruction set; the
// driver obtains it from the backend's Init and hands it to MakeTarget
// at configuration time.
type Arch struct {
	// RelExpr classifies relocation type t. It is called once per
	// relocation during layout and determines how the final value
	// is computed (the reference point is subtracted for ExprPC).
	// Unknown types are reported against file and yield ExprNone.
	// s and loc identify the referenced symbol and the bytes being
	// relocated; the AVR backend does not consult them, but the
	// contract carries them for backends that must.
	RelExpr func(rep *ErrorReporter, t objabi.RelocType, s *sym.Symbol, file string, loc []byte) sym.RelExpr

	// Relocate patches the resolved value val into the code at loc,
	// in place. loc aliases the output image; file and off locate
	// the patch site, used only in diagnostics. Unknown types are
	// reported and leave loc untouched.
	Relocate func(rep *ErrorReporter, file string, loc []byte, off int64, t objabi.RelocType, val int64)
}

// Target holds the configuration we're linking for.
type Target struct {
	Arch *sys.Arch

	thearch Arch
}

func MakeTarget(arch *sys.Arch, thearch Arch) *Target {
	return &Target{Arch: arch, thearch: thearch}
}

func (t *Target) IsAVR() bool {
	return t.Arch.Char == sys.CharAVR
}

// Copyright 2026 The LLVM-China Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

// Symbol is the small slice of linker symbol state the relocation
// phase needs: an assigned address, the symbol's bytes, and the
// relocations to apply against them. Symbol resolution and address
// assignment happen elsewhere; by the time a Symbol reaches the
// relocation phase Value is final.
type Symbol struct {
	Name  string
	Value int64  // assigned address
	P     []byte // symbol data in the output image
	R     []Reloc
	File  string // originating object file, for diagnostics
}

// Copyright 2026 The LLVM-China Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ld

import (
	"encoding/binary"
	"testing"

	"github.com/LLVM-China/avr-lld/internal/objabi"
	"github.com/LLVM-China/avr-lld/internal/sym"
	"github.com/LLVM-China/avr-lld/internal/sys"
)

// Toy backend: type 1 is absolute, type 2 is PC-relative, everything
// else is rejected. Relocate stores the low 16 bits of the value so
// the tests can read the computation back out of the symbol data.
const (
	relAbs objabi.RelocType = 1
	relPC  objabi.RelocType = 2
)

func testTarget() *Target {
	thearch := Arch{
		RelExpr: func(rep *ErrorReporter, t objabi.RelocType, s *sym.Symbol, file string, loc []byte) sym.RelExpr {
			switch t {
			case relAbs:
				return sym.ExprAbs
			case relPC:
				return sym.ExprPC
			}
			rep.Errorf(file, "unknown relocation type: %v", t)
			return sym.ExprNone
		},
		Relocate: func(rep *ErrorReporter, file string, loc []byte, off int64, t objabi.RelocType, val int64) {
			binary.LittleEndian.PutUint16(loc, uint16(val))
		},
	}
	return MakeTarget(&sys.ArchAVR, thearch)
}

func TestRelocSymResolvedValues(t *testing.T) {
	target := testTarget()
	rep := new(ErrorReporter)

	dest := &sym.Symbol{Name: "dest", Value: 0x1234}
	s := &sym.Symbol{
		Name:  "caller",
		Value: 0x100,
		File:  "caller.o",
		P:     make([]byte, 8),
		R: []sym.Reloc{
			{Off: 0, Type: relAbs, Sym: dest, Add: 2},
			{Off: 4, Type: relPC, Sym: dest},
		},
	}
	RelocSym(target, rep, s)
	if rep.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", rep.Errors())
	}
	if got := binary.LittleEndian.Uint16(s.P); got != 0x1236 {
		t.Errorf("absolute: expected %#04x got %#04x", 0x1236, got)
	}
	// PC-relative subtracts the patch site address, 0x100+4.
	if got := binary.LittleEndian.Uint16(s.P[4:]); got != 0x1130 {
		t.Errorf("pc-relative: expected %#04x got %#04x", 0x1130, got)
	}
}

func TestRelocSymBadOffset(t *testing.T) {
	target := testTarget()
	rep := new(ErrorReporter)

	dest := &sym.Symbol{Name: "dest", Value: 0x10}
	s := &sym.Symbol{
		Name: "s",
		File: "s.o",
		P:    []byte{0xaa, 0xbb},
		R: []sym.Reloc{
			{Off: 2, Type: relAbs, Sym: dest},
			{Off: -1, Type: relAbs, Sym: dest},
		},
	}
	RelocSym(target, rep, s)
	if n := rep.ErrorCount(); n != 2 {
		t.Fatalf("expected 2 diagnostics, got %d: %v", n, rep.Errors())
	}
	if s.P[0] != 0xaa || s.P[1] != 0xbb {
		t.Errorf("out of range relocation modified the data: % x", s.P)
	}
}

func TestRelocSymUnknownTypeSkipsApply(t *testing.T) {
	target := testTarget()
	rep := new(ErrorReporter)

	s := &sym.Symbol{
		Name: "s",
		File: "s.o",
		P:    []byte{0xaa, 0xbb},
		R:    []sym.Reloc{{Off: 0, Type: objabi.RelocType(77), Sym: &sym.Symbol{}}},
	}
	RelocSym(target, rep, s)
	if n := rep.ErrorCount(); n != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", n, rep.Errors())
	}
	if s.P[0] != 0xaa || s.P[1] != 0xbb {
		t.Errorf("rejected relocation modified the data: % x", s.P)
	}
}

func TestRelocParallelMatchesSerial(t *testing.T) {
	target := testTarget()
	dest := &sym.Symbol{Name: "dest", Value: 0x400}

	mksyms := func() []*sym.Symbol {
		syms := make([]*sym.Symbol, 64)
		for i := range syms {
			syms[i] = &sym.Symbol{
				Name:  "s",
				Value: int64(i) * 0x20,
				File:  "s.o",
				P:     make([]byte, 4),
				R: []sym.Reloc{
					{Off: 0, Type: relAbs, Sym: dest, Add: int64(i)},
					{Off: 2, Type: relPC, Sym: dest},
				},
			}
		}
		return syms
	}

	serial := mksyms()
	srep := new(ErrorReporter)
	for _, s := range serial {
		RelocSym(target, srep, s)
	}

	parallel := mksyms()
	prep := new(ErrorReporter)
	Reloc(target, prep, parallel)

	if srep.HasErrors() || prep.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v %v", srep.Errors(), prep.Errors())
	}
	for i := range serial {
		for j := range serial[i].P {
			if serial[i].P[j] != parallel[i].P[j] {
				t.Errorf("symbol %d byte %d: serial %#02x parallel %#02x", i, j, serial[i].P[j], parallel[i].P[j])
			}
		}
	}
}

func TestRelocParallelErrorCount(t *testing.T) {
	target := testTarget()
	rep := new(ErrorReporter)

	syms := make([]*sym.Symbol, 32)
	for i := range syms {
		syms[i] = &sym.Symbol{
			Name: "s",
			File: "s.o",
			P:    make([]byte, 2),
			R:    []sym.Reloc{{Off: 0, Type: objabi.RelocType(99), Sym: &sym.Symbol{}}},
		}
	}
	Reloc(target, rep, syms)
	if n := rep.ErrorCount(); n != len(syms) {
		t.Errorf("expected %d diagnostics, got %d", len(syms), n)
	}
}

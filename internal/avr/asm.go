// Copyright 2026 The LLVM-China Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package avr implements the AVR relocation backend. AVR is a
// Harvard-architecture 8-bit microcontroller family with 16-bit
// little-endian instruction words and program memory addressed in
// 2-byte words; this package classifies AVR relocations for the
// generic core and patches resolved values into the exact bit
// positions each instruction encoding requires.
package avr

import (
	"encoding/binary"

	"github.com/LLVM-China/avr-lld/internal/ld"
	"github.com/LLVM-China/avr-lld/internal/objabi"
	"github.com/LLVM-China/avr-lld/internal/sym"
)

// The relocated value is truncated to a signed 16-bit working value
// before encoding. Truncation is silent: range checking belongs to
// the layout phase, not here.

// branchAdjust compensates for the size of the branch instruction
// itself; the AVR program counter has advanced past the 2-byte
// instruction when a branch target is computed.
func branchAdjust(v int16) int16 { return v - 2 }

// pmAdjust converts a byte address to a program memory address.
// AVR addresses code as 2-byte words, so this is a right shift.
func pmAdjust(v int16) int16 { return v >> 1 }

// negAdjust negates the value, for the negated load-immediate forms.
func negAdjust(v int16) int16 { return -v }

// relExprs maps every relocation type this backend can encode to its
// addressing class. Only the two branch displacement forms are
// PC-relative; every other type encodes an absolute value.
var relExprs = map[objabi.RelocType]sym.RelExpr{
	objabi.R_AVR_7_PCREL:  sym.ExprPC,
	objabi.R_AVR_13_PCREL: sym.ExprPC,

	objabi.R_AVR_LO8_LDI:        sym.ExprAbs,
	objabi.R_AVR_LDI:            sym.ExprAbs,
	objabi.R_AVR_6:              sym.ExprAbs,
	objabi.R_AVR_6_ADIW:         sym.ExprAbs,
	objabi.R_AVR_HI8_LDI:        sym.ExprAbs,
	objabi.R_AVR_HH8_LDI:        sym.ExprAbs,
	objabi.R_AVR_MS8_LDI:        sym.ExprAbs,
	objabi.R_AVR_LO8_LDI_NEG:    sym.ExprAbs,
	objabi.R_AVR_HI8_LDI_NEG:    sym.ExprAbs,
	objabi.R_AVR_HH8_LDI_NEG:    sym.ExprAbs,
	objabi.R_AVR_MS8_LDI_NEG:    sym.ExprAbs,
	objabi.R_AVR_LO8_LDI_GS:     sym.ExprAbs,
	objabi.R_AVR_LO8_LDI_PM:     sym.ExprAbs,
	objabi.R_AVR_HI8_LDI_GS:     sym.ExprAbs,
	objabi.R_AVR_HI8_LDI_PM:     sym.ExprAbs,
	objabi.R_AVR_HH8_LDI_PM:     sym.ExprAbs,
	objabi.R_AVR_LO8_LDI_PM_NEG: sym.ExprAbs,
	objabi.R_AVR_HI8_LDI_PM_NEG: sym.ExprAbs,
	objabi.R_AVR_HH8_LDI_PM_NEG: sym.ExprAbs,
	objabi.R_AVR_8:              sym.ExprAbs,
	objabi.R_AVR_8_LO8:          sym.ExprAbs,
	objabi.R_AVR_8_HI8:          sym.ExprAbs,
	objabi.R_AVR_8_HLO8:         sym.ExprAbs,
	objabi.R_AVR_CALL:           sym.ExprAbs,
	objabi.R_AVR_16:             sym.ExprAbs,
	objabi.R_AVR_16_PM:          sym.ExprAbs,
	objabi.R_AVR_LDS_STS_16:     sym.ExprAbs,
	objabi.R_AVR_PORT6:          sym.ExprAbs,
	objabi.R_AVR_PORT5:          sym.ExprAbs,
}

func relExpr(rep *ld.ErrorReporter, t objabi.RelocType, s *sym.Symbol, file string, loc []byte) sym.RelExpr {
	e, ok := relExprs[t]
	if !ok {
		rep.Errorf(file, "unknown relocation type: %v", t)
		return sym.ExprNone
	}
	return e
}

func relocate(rep *ld.ErrorReporter, file string, loc []byte, off int64, t objabi.RelocType, val int64) {
	rule, ok := encodingRules[t]
	if !ok {
		rep.Errorf(file, "unrecognized relocation %v at offset %#x", t, off)
		return
	}
	n := 2
	if rule.wide {
		n = 4
	}
	if len(loc) < n {
		rep.Errorf(file, "relocation %v at offset %#x extends past end of section", t, off)
		return
	}

	srel := int16(val)
	for _, adjust := range rule.adjust {
		srel = adjust(srel)
	}
	if rule.lane != 0 {
		srel = int16((int32(srel) >> rule.lane) & 0xff)
	}

	// Merges view the adjusted value sign extended to 32 bits; the
	// composite call encoding takes bits above the low word from
	// the sign extension.
	v := int32(srel)

	x := binary.LittleEndian.Uint16(loc) & rule.keep
	for _, f := range rule.fields {
		if f.shift >= 0 {
			x |= uint16((v >> f.shift) & int32(f.mask))
		} else {
			x |= uint16((v << -f.shift) & int32(f.mask))
		}
	}
	binary.LittleEndian.PutUint16(loc, x)
	if rule.wide {
		binary.LittleEndian.PutUint16(loc[2:], uint16(v))
	}
}

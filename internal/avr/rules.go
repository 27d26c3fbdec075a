// Copyright 2026 The LLVM-China Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avr

import (
	"github.com/LLVM-China/avr-lld/internal/objabi"
)

// A bitField moves bits of the adjusted value into fixed bit
// positions of the instruction word. The value is shifted right by
// shift (left when shift is negative) and masked with mask, which
// names exactly the word bits the field may set.
type bitField struct {
	shift int8
	mask  uint32
}

// An encodingRule describes how one relocation type folds its value
// into machine code: adjustments applied in order to the 16-bit
// working value, an optional byte lane selection, then bit field
// merges into the instruction word. Word bits in keep survive the
// merge; keep 0 overwrites the whole word, for locations that hold
// data rather than an opcode. Rules marked wide additionally fill a
// second word at loc+2 with the low 16 bits of the value.
type encodingRule struct {
	adjust []func(int16) int16
	lane   uint8 // byte lane right shift: 0, 8, 16 or 24
	keep   uint16
	fields []bitField
	wide   bool
}

// The load-immediate family splits a byte constant into the two
// 4-bit immediate fields of LDI: low nibble in bits 0-3, high nibble
// in bits 8-11. Register and opcode bits are preserved.
var ldiFields = []bitField{{0, 0x000f}, {-4, 0x0f00}}

func ldiRule(lane uint8, adjust ...func(int16) int16) encodingRule {
	return encodingRule{adjust: adjust, lane: lane, keep: 0xf0f0, fields: ldiFields}
}

var encodingRules = map[objabi.RelocType]encodingRule{
	// Branch displacements. BRBC/BRBS carry a 7-bit word offset in
	// bits 3-9; RJMP/RCALL carry a 12-bit word offset in bits 0-11.
	objabi.R_AVR_7_PCREL: {
		adjust: []func(int16) int16{branchAdjust},
		keep:   0xfc07,
		fields: []bitField{{-2, 0x03f8}},
	},
	objabi.R_AVR_13_PCREL: {
		adjust: []func(int16) int16{branchAdjust, pmAdjust},
		keep:   0xf000,
		fields: []bitField{{0, 0x0fff}},
	},

	// Load-immediate family: plain, byte lanes, negated forms, and
	// program memory (word address) forms.
	objabi.R_AVR_LDI:            ldiRule(0),
	objabi.R_AVR_LO8_LDI:        ldiRule(0),
	objabi.R_AVR_HI8_LDI:        ldiRule(8),
	objabi.R_AVR_HH8_LDI:        ldiRule(16),
	objabi.R_AVR_MS8_LDI:        ldiRule(24),
	objabi.R_AVR_LO8_LDI_NEG:    ldiRule(0, negAdjust),
	objabi.R_AVR_HI8_LDI_NEG:    ldiRule(8, negAdjust),
	objabi.R_AVR_HH8_LDI_NEG:    ldiRule(16, negAdjust),
	objabi.R_AVR_MS8_LDI_NEG:    ldiRule(24, negAdjust),
	objabi.R_AVR_LO8_LDI_PM:     ldiRule(0, pmAdjust),
	objabi.R_AVR_LO8_LDI_GS:     ldiRule(0, pmAdjust),
	objabi.R_AVR_HI8_LDI_PM:     ldiRule(8, pmAdjust),
	objabi.R_AVR_HI8_LDI_GS:     ldiRule(8, pmAdjust),
	objabi.R_AVR_HH8_LDI_PM:     ldiRule(16, pmAdjust),
	objabi.R_AVR_LO8_LDI_PM_NEG: ldiRule(0, negAdjust, pmAdjust),
	objabi.R_AVR_HI8_LDI_PM_NEG: ldiRule(8, negAdjust, pmAdjust),
	objabi.R_AVR_HH8_LDI_PM_NEG: ldiRule(16, negAdjust, pmAdjust),

	// LDD/STD carry a 6-bit displacement scattered across bits 0-2,
	// 10-11 and 13; ADIW carries its 6-bit immediate in bits 0-3
	// and 6-7.
	objabi.R_AVR_6: {
		keep:   0xd3f8,
		fields: []bitField{{0, 0x0007}, {-7, 0x0c00}, {-8, 0x2000}},
	},
	objabi.R_AVR_6_ADIW: {
		keep:   0xff30,
		fields: []bitField{{0, 0x000f}, {-2, 0x00c0}},
	},

	// Data relocations overwrite the whole word: the location holds
	// data, not an opcode.
	objabi.R_AVR_8:      {fields: []bitField{{0, 0x00ff}}},
	objabi.R_AVR_8_LO8:  {fields: []bitField{{0, 0xffff}}},
	objabi.R_AVR_8_HI8:  {fields: []bitField{{8, 0xffff}}},
	objabi.R_AVR_8_HLO8: {fields: []bitField{{16, 0xffff}}},
	objabi.R_AVR_16:     {fields: []bitField{{0, 0xffff}}},
	objabi.R_AVR_16_PM: {
		adjust: []func(int16) int16{pmAdjust},
		fields: []bitField{{0, 0xffff}},
	},

	// CALL/JMP split a 22-bit word address across two words: bits
	// 16 and 17-21 of the address land in bits 0 and 4-8 of the
	// opcode word, the low 16 bits fill the following word.
	objabi.R_AVR_CALL: {
		adjust: []func(int16) int16{pmAdjust},
		keep:   0xffff,
		fields: []bitField{{16, 0x0001}, {13, 0x01f0}},
		wide:   true,
	},

	// I/O and short addressing forms: LDS/STS (AVRrc) scatters a
	// 7-bit data address, IN/OUT a 6-bit port, SBI/CBI family a
	// 5-bit port.
	objabi.R_AVR_LDS_STS_16: {
		keep:   0xffff,
		fields: []bitField{{0, 0x000f}, {-5, 0x0600}, {-2, 0x0100}},
	},
	objabi.R_AVR_PORT6: {
		keep:   0xf9f0,
		fields: []bitField{{0, 0x000f}, {-5, 0x0600}},
	},
	objabi.R_AVR_PORT5: {
		keep:   0xff07,
		fields: []bitField{{-3, 0x00f8}},
	},
}

// Copyright 2026 The LLVM-China Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package objabi

import "strconv"

// RelocType is an AVR ELF relocation type code as it appears in
// object files. The full table defined by the AVR ABI is listed here;
// the backend encodes the subset that can occur in linked programs,
// and reports the rest through the normal unknown-kind diagnostics.
type RelocType int32

const (
	R_AVR_NONE           RelocType = 0
	R_AVR_32             RelocType = 1
	R_AVR_7_PCREL        RelocType = 2
	R_AVR_13_PCREL       RelocType = 3
	R_AVR_16             RelocType = 4
	R_AVR_16_PM          RelocType = 5
	R_AVR_LO8_LDI        RelocType = 6
	R_AVR_HI8_LDI        RelocType = 7
	R_AVR_HH8_LDI        RelocType = 8
	R_AVR_LO8_LDI_NEG    RelocType = 9
	R_AVR_HI8_LDI_NEG    RelocType = 10
	R_AVR_HH8_LDI_NEG    RelocType = 11
	R_AVR_LO8_LDI_PM     RelocType = 12
	R_AVR_HI8_LDI_PM     RelocType = 13
	R_AVR_HH8_LDI_PM     RelocType = 14
	R_AVR_LO8_LDI_PM_NEG RelocType = 15
	R_AVR_HI8_LDI_PM_NEG RelocType = 16
	R_AVR_HH8_LDI_PM_NEG RelocType = 17
	R_AVR_CALL           RelocType = 18
	R_AVR_LDI            RelocType = 19
	R_AVR_6              RelocType = 20
	R_AVR_6_ADIW         RelocType = 21
	R_AVR_MS8_LDI        RelocType = 22
	R_AVR_MS8_LDI_NEG    RelocType = 23
	R_AVR_LO8_LDI_GS     RelocType = 24
	R_AVR_HI8_LDI_GS     RelocType = 25
	R_AVR_8              RelocType = 26
	R_AVR_8_LO8          RelocType = 27
	R_AVR_8_HI8          RelocType = 28
	R_AVR_8_HLO8         RelocType = 29
	R_AVR_DIFF8          RelocType = 30
	R_AVR_DIFF16         RelocType = 31
	R_AVR_DIFF32         RelocType = 32
	R_AVR_LDS_STS_16     RelocType = 33
	R_AVR_PORT6          RelocType = 34
	R_AVR_PORT5          RelocType = 35
	R_AVR_32_PM          RelocType = 36
)

var relocTypeNames = map[RelocType]string{
	R_AVR_NONE:           "R_AVR_NONE",
	R_AVR_32:             "R_AVR_32",
	R_AVR_7_PCREL:        "R_AVR_7_PCREL",
	R_AVR_13_PCREL:       "R_AVR_13_PCREL",
	R_AVR_16:             "R_AVR_16",
	R_AVR_16_PM:          "R_AVR_16_PM",
	R_AVR_LO8_LDI:        "R_AVR_LO8_LDI",
	R_AVR_HI8_LDI:        "R_AVR_HI8_LDI",
	R_AVR_HH8_LDI:        "R_AVR_HH8_LDI",
	R_AVR_LO8_LDI_NEG:    "R_AVR_LO8_LDI_NEG",
	R_AVR_HI8_LDI_NEG:    "R_AVR_HI8_LDI_NEG",
	R_AVR_HH8_LDI_NEG:    "R_AVR_HH8_LDI_NEG",
	R_AVR_LO8_LDI_PM:     "R_AVR_LO8_LDI_PM",
	R_AVR_HI8_LDI_PM:     "R_AVR_HI8_LDI_PM",
	R_AVR_HH8_LDI_PM:     "R_AVR_HH8_LDI_PM",
	R_AVR_LO8_LDI_PM_NEG: "R_AVR_LO8_LDI_PM_NEG",
	R_AVR_HI8_LDI_PM_NEG: "R_AVR_HI8_LDI_PM_NEG",
	R_AVR_HH8_LDI_PM_NEG: "R_AVR_HH8_LDI_PM_NEG",
	R_AVR_CALL:           "R_AVR_CALL",
	R_AVR_LDI:            "R_AVR_LDI",
	R_AVR_6:              "R_AVR_6",
	R_AVR_6_ADIW:         "R_AVR_6_ADIW",
	R_AVR_MS8_LDI:        "R_AVR_MS8_LDI",
	R_AVR_MS8_LDI_NEG:    "R_AVR_MS8_LDI_NEG",
	R_AVR_LO8_LDI_GS:     "R_AVR_LO8_LDI_GS",
	R_AVR_HI8_LDI_GS:     "R_AVR_HI8_LDI_GS",
	R_AVR_8:              "R_AVR_8",
	R_AVR_8_LO8:          "R_AVR_8_LO8",
	R_AVR_8_HI8:          "R_AVR_8_HI8",
	R_AVR_8_HLO8:         "R_AVR_8_HLO8",
	R_AVR_DIFF8:          "R_AVR_DIFF8",
	R_AVR_DIFF16:         "R_AVR_DIFF16",
	R_AVR_DIFF32:         "R_AVR_DIFF32",
	R_AVR_LDS_STS_16:     "R_AVR_LDS_STS_16",
	R_AVR_PORT6:          "R_AVR_PORT6",
	R_AVR_PORT5:          "R_AVR_PORT5",
	R_AVR_32_PM:          "R_AVR_32_PM",
}

// String returns the ABI name of the relocation type, or a numeric
// placeholder for codes outside the table.
func (t RelocType) String() string {
	if s, ok := relocTypeNames[t]; ok {
		return s
	}
	return "RelocType(" + strconv.Itoa(int(t)) + ")"
}

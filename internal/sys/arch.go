// Copyright 2026 The LLVM-China Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sys

import "encoding/binary"

// ArchChar represents an architecture family.
type ArchChar byte

const (
	CharAVR ArchChar = 'v'
)

// Arch represents an individual architecture.
type Arch struct {
	Name string
	Char ArchChar

	ByteOrder binary.ByteOrder

	IntSize int
	PtrSize int
	RegSize int

	// MinLC is the minimum length of an instruction code unit in
	// bytes. Relocated code addresses are expressed in these units.
	MinLC int
}

// HasChar reports whether a is a member of any of the specified
// architecture families.
func (a *Arch) HasChar(xs ...ArchChar) bool {
	for _, x := range xs {
		if a.Char == x {
			return true
		}
	}
	return false
}

// ArchAVR describes the AVR family: 8-bit registers, 16-bit
// little-endian instruction words, program memory addressed in
// 2-byte words.
var ArchAVR = Arch{
	Name:      "avr",
	Char:      CharAVR,
	ByteOrder: binary.LittleEndian,
	IntSize:   2,
	PtrSize:   2,
	RegSize:   1,
	MinLC:     2,
}

// Copyright 2026 The LLVM-China Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package avr

import (
	"github.com/LLVM-China/avr-lld/internal/ld"
	"github.com/LLVM-China/avr-lld/internal/sys"
)

// Init returns the AVR architecture description and the linker hooks
// for it. The generic core selects a backend at configuration time by
// calling its Init and handing the results to ld.MakeTarget.
func Init() (*sys.Arch, ld.Arch) {
	arch := &sys.ArchAVR

	theArch := ld.Arch{
		RelExpr:  relExpr,
		Relocate: relocate,
	}
	return arch, theArch
}

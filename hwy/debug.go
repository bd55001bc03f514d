// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hwy

import (
	"fmt"
	"unsafe"
)

// Loads and stores trust the caller to pass a buffer of at least Lanes()
// elements. Go slicing still panics on a short buffer; building with
// -tags hwydebug adds these assertions up front so the panic names the
// operation and both lengths.

// AssertLen panics if have < want. It compiles to nothing unless
// DebugChecks is set.
func AssertLen(what string, have, want int) {
	if DebugChecks && have < want {
		panic(fmt.Sprintf("hwy: %s: buffer holds %d elements, need %d", what, have, want))
	}
}

// AssertAligned panics if buf does not start on a boundary of lanes
// elements of T. Only power-of-two vector sizes are checked. It compiles to
// nothing unless DebugChecks is set.
func AssertAligned[T Lanes](what string, buf []T, lanes int) {
	if !DebugChecks || len(buf) == 0 {
		return
	}
	var zero T
	align := uintptr(lanes) * unsafe.Sizeof(zero)
	if align == 0 || align&(align-1) != 0 {
		return
	}
	if addr := uintptr(unsafe.Pointer(&buf[0])); addr%align != 0 {
		panic(fmt.Sprintf("hwy: %s: aligned access at %#x, want %d-byte alignment", what, addr, align))
	}
}

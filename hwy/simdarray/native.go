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


package simdarray

import "github.com/ajroetker/go-simdarray/hwy"

// Native is the contract a native vector type V with lanes of T must meet to
// be chained. Lanes must be the same for every value of V. The methods that
// build a new vector (Splat, Iota, Load) are called on the zero value.
//
// hwy/wide provides implementations for every lane type.
type Native[V any, T hwy.Lanes] interface {
	// Lanes returns the number of T lanes in one V.
	Lanes() int
	// Splat returns a vector with every lane set to x.
	Splat(x T) V
	// Iota returns the index ramp 0, 1, ..., Lanes()-1.
	Iota() V
	// Load reads Lanes() elements from the start of src.
	Load(src []T, f hwy.Flags) V
	// Store writes Lanes() elements to the start of dst.
	Store(dst []T, f hwy.Flags)
	// Apply returns op(receiver, rhs) lane by lane.
	Apply(op hwy.Op, rhs V) V
	// Lane returns lane i.
	Lane(i int) T
}

// NativeMask is the contract a native mask type M must meet to be chained.
type NativeMask[M any] interface {
	// Lanes returns the number of lanes in one M.
	Lanes() int
	// Splat returns a mask with every lane set to b.
	Splat(b bool) M
	// IsFull reports whether every lane is set.
	IsFull() bool
	// IsEmpty reports whether no lane is set.
	IsEmpty() bool
	// Lane reports whether lane i is set.
	Lane(i int) bool
	// CountTrue returns the number of set lanes.
	CountTrue() int
}

// Segments lists the chain depths that can be instantiated. The depth is the
// array length; there is no zero-length chain.
type Segments[E any] interface {
	[1]E | [2]E | [3]E | [4]E | [5]E | [6]E | [7]E | [8]E |
		[9]E | [10]E | [11]E | [12]E | [13]E | [14]E | [15]E | [16]E |
		[32]E | [64]E
}

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

// Package hwy holds the vocabulary shared by every layer of go-simdarray:
// lane type constraints, access flags, element-wise operation kinds, CPU
// dispatch detection and vector size tags.
//
// Native vector types live in hwy/wide and the fixed-size composite vectors
// built from them live in hwy/simdarray:
//
//	import (
//	    "github.com/ajroetker/go-simdarray/hwy"
//	    "github.com/ajroetker/go-simdarray/hwy/simdarray"
//	    "github.com/ajroetker/go-simdarray/hwy/wide"
//	)
//
//	// 24 float32 lanes as three 8-lane native segments.
//	type F32x24 = simdarray.Vector[wide.Vec8[float32], float32, [3]wide.Vec8[float32]]
//
//	var a, b F32x24
//	a.Load(data1, hwy.Unaligned)
//	b.Load(data2, hwy.Unaligned)
//	a.AddAssign(b)
//	a.Store(output, hwy.Unaligned)
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}

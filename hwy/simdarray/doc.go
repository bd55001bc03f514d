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

// Package simdarray builds fixed-size vectors and masks out of a chain of
// native SIMD segments.
//
// A logical vector whose length is not one hardware register is stored as N
// native segments of the same type V. Vector[V, T, S] and Mask[M, S] present
// the chain as one flat vector: every operation runs on segment 0 (the head),
// then on segment 1, and so on to the end of the chain. Segments never
// exchange lanes, so a chain operation is observably the same as N
// independent native operations.
//
// The segment count is part of the type: S is an array type [N]V with N
// between 1 and 16, 32 or 64. Combining two vectors of different depth or
// native type does not compile.
//
//	type F32x24 = simdarray.Vector[wide.Vec8[float32], float32, [3]wide.Vec8[float32]]
//	type M32x24 = simdarray.Mask[wide.Mask8[float32], [3]wide.Mask8[float32]]
//
//	var a, b F32x24
//	a.Iota(0)         // 0, 1, ..., 23
//	b.Broadcast(10)
//	a.MulAssign(b)    // 0, 10, ..., 230
//
//	var m M32x24
//	simdarray.Assign(&m, a, b, wide.Vec8[float32].Less)
//	m.CountTrue()     // 1
//
// SelectBest picks the native width for a logical length from an ordered
// list of candidates, and Decompose splits a length into native widths.
//
// Nothing in this package allocates except Mask.ToBitSet with a nil
// destination and Decompose, which returns a plan slice.
package simdarray

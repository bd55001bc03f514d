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


// Package wide provides the reference native vector and mask types that the
// composite vectors in hwy/simdarray are built from.
//
// A native vector is a fixed-size array of lanes with value semantics:
//
//	Vec1[T], Vec2[T], Vec4[T], Vec8[T], Vec16[T], Vec32[T], Vec64[T]
//
// Each has a matching mask type (Mask8[T] for Vec8[T], and so on) holding one
// bit per lane. Comparison methods such as Vec8[T].Less return that mask and
// are meant to be passed around as method expressions:
//
//	simdarray.Assign(&m, a, b, wide.Vec8[float32].Less)
//
// # Design Philosophy
//
//   - Use simple loops over fixed-size arrays for auto-vectorization
//   - Keep every operation a pure value-in, value-out method
//   - Route float add/sub/mul/div through vek, which carries hand-written
//     AVX2/NEON kernels
//   - Define every lane result by hwy.ApplyScalar so that backends agree bit
//     for bit
package wide

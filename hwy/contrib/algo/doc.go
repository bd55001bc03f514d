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

// Package algo applies composite-vector kernels to slices of any length.
//
// The slice is cut into blocks of one simdarray.Vector. Full blocks are
// spread over a workerpool.Pool; the remainder is copied into a block padded
// with its last element, so kernels never see lanes that did not come from
// the input. Pass a nil pool to run on the calling goroutine.
//
//	type F32x32 = simdarray.Vector[wide.Vec8[float32], float32, [4]wide.Vec8[float32]]
//
//	algo.Transform(pool, input, output, func(v *F32x32) {
//	    v.Call(wide.Vec8[float32].Sqrt)
//	})
package algo

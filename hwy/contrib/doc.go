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


// Package contrib holds bulk helpers built on the composite vectors of
// hwy/simdarray.
//
// # Subpackages
//
//   - algo: Transform, Sum and CountCompare over slices of any length,
//     one composite vector block at a time
//   - workerpool: persistent worker pool the algo helpers split blocks over
//
// # Algorithm Utilities (hwy/contrib/algo)
//
//	import "github.com/ajroetker/go-simdarray/hwy/contrib/algo"
//
//	type seg = wide.Vec8[float32]
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//
//	// x² + x over the whole slice, 16 lanes per block
//	algo.Transform(pool, input, output, func(v *simdarray.Vector[seg, float32, [2]seg]) {
//	    x := *v
//	    v.MulAssign(x)
//	    v.AddAssign(x)
//	})
//
//	total := algo.Sum[[2]seg, seg](pool, input)
//
// A nil pool is valid and runs everything on the calling goroutine.
package contrib

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

// ProcessWithTail walks size elements in blocks of lanes elements.
//
// It calls:
//   - fullFn(offset) for each full block (offset is the starting index)
//   - tailFn(offset, count) once for the remainder if size is not a multiple of lanes
//
// Example, with a 24-lane composite vector:
//
//	var v F32x24
//	hwy.ProcessWithTail(len(data), v.Lanes(),
//	    func(offset int) {
//	        v.Load(data[offset:], hwy.Unaligned)
//	        v.AddAssign(v)
//	        v.Store(output[offset:], hwy.Unaligned)
//	    },
//	    func(offset, count int) {
//	        for i := offset; i < offset+count; i++ {
//	            output[i] = data[i] + data[i]
//	        }
//	    },
//	)
func ProcessWithTail(size, lanes int, fullFn func(offset int), tailFn func(offset, count int)) {
	if size <= 0 || lanes <= 0 {
		return
	}

	// Process full blocks
	fullBlocks := size / lanes
	for i := range fullBlocks {
		fullFn(i * lanes)
	}

	// Process tail if any
	remaining := size % lanes
	if remaining > 0 && tailFn != nil {
		tailFn(fullBlocks*lanes, remaining)
	}
}

// AlignedSize rounds up size to the next multiple of lanes.
// This is useful for allocating buffers that will be processed in whole
// vectors.
func AlignedSize(size, lanes int) int {
	if lanes <= 0 {
		return size
	}
	return ((size + lanes - 1) / lanes) * lanes
}

// IsAligned returns true if size is a multiple of lanes.
func IsAligned(size, lanes int) bool {
	if lanes <= 0 {
		return true
	}
	return size%lanes == 0
}

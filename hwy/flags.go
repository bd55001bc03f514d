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

import "strings"

// Flags are memory access hints passed through Load and Store to the native
// layer. They never change results, only how a backend may touch memory.
type Flags uint8

const (
	// Unaligned makes no promise about the buffer address.
	Unaligned Flags = 0

	// Aligned promises the buffer starts on a full-vector boundary.
	// Builds with the hwydebug tag verify the promise.
	Aligned Flags = 1 << 0

	// Streaming hints that the data will not be reused soon and may bypass
	// the cache (non-temporal loads and stores).
	Streaming Flags = 1 << 1

	// Prefetch hints that the following block will be accessed next.
	Prefetch Flags = 1 << 2
)

// IsAligned reports whether the Aligned hint is set.
func (f Flags) IsAligned() bool { return f&Aligned != 0 }

// IsStreaming reports whether the Streaming hint is set.
func (f Flags) IsStreaming() bool { return f&Streaming != 0 }

// IsPrefetch reports whether the Prefetch hint is set.
func (f Flags) IsPrefetch() bool { return f&Prefetch != 0 }

// String returns the set hints joined by "|", or "unaligned".
func (f Flags) String() string {
	var parts []string
	if f.IsAligned() {
		parts = append(parts, "aligned")
	}
	if f.IsStreaming() {
		parts = append(parts, "streaming")
	}
	if f.IsPrefetch() {
		parts = append(parts, "prefetch")
	}
	if len(parts) == 0 {
		return "unaligned"
	}
	return strings.Join(parts, "|")
}

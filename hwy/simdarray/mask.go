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

import (
	"fmt"

	"github.com/ajroetker/go-simdarray/hwy"
	"github.com/bits-and-blooms/bitset"
)

// Mask is the predicate chain matching a Vector: len(S) native masks, one
// per vector segment. The zero value is whatever the zero M is, which for
// hwy/wide masks means every lane false.
type Mask[M NativeMask[M], S Segments[M]] struct {
	segs S
}

// BroadcastMask returns a chain with every segment set to m.
func BroadcastMask[M NativeMask[M], S Segments[M]](m M) Mask[M, S] {
	var c Mask[M, S]
	c.Broadcast(m)
	return c
}

// Assign sets dst segment i to cmp(lhs segment i, rhs segment i), head
// first. cmp is usually a native comparison method expression:
//
//	simdarray.Assign(&m, a, b, wide.Vec8[int32].Greater)
//
// dst must have the same depth and segment width as the vectors. Vector
// operands are checked by the compiler; the mask depth cannot be, so a
// mismatch panics.
func Assign[M NativeMask[M], MS Segments[M], V Native[V, T], T hwy.Lanes, VS Segments[V]](
	dst *Mask[M, MS], lhs, rhs Vector[V, T, VS], cmp func(a, b V) M,
) {
	var zm M
	var zv V
	if len(dst.segs) != len(lhs.segs) || zm.Lanes() != zv.Lanes() {
		panic(fmt.Sprintf("simdarray: mask chain %dx%d does not match vector chain %dx%d",
			len(dst.segs), zm.Lanes(), len(lhs.segs), zv.Lanes()))
	}
	for i := 0; i < len(dst.segs); i++ {
		dst.segs[i] = cmp(lhs.segs[i], rhs.segs[i])
	}
}

// NumSegments returns the chain depth N.
func (m Mask[M, S]) NumSegments() int {
	return len(m.segs)
}

// Lanes returns the total logical lane count.
func (m Mask[M, S]) Lanes() int {
	var z M
	return len(m.segs) * z.Lanes()
}

// Head returns segment 0.
func (m Mask[M, S]) Head() M {
	return m.segs[0]
}

// Segment returns segment i.
func (m Mask[M, S]) Segment(i int) M {
	return m.segs[i]
}

// SetSegment replaces segment i.
func (m *Mask[M, S]) SetSegment(i int, x M) {
	m.segs[i] = x
}

// Broadcast sets every segment to x.
func (m *Mask[M, S]) Broadcast(x M) {
	for i := 0; i < len(m.segs); i++ {
		m.segs[i] = x
	}
}

// Splat sets every lane of every segment to b.
func (m *Mask[M, S]) Splat(b bool) {
	var z M
	m.Broadcast(z.Splat(b))
}

// IsFull reports whether every segment is full. A chain with any partially
// set segment is neither full nor empty.
func (m Mask[M, S]) IsFull() bool {
	for i := 0; i < len(m.segs); i++ {
		if !m.segs[i].IsFull() {
			return false
		}
	}
	return true
}

// IsEmpty reports whether every segment is empty.
func (m Mask[M, S]) IsEmpty() bool {
	for i := 0; i < len(m.segs); i++ {
		if !m.segs[i].IsEmpty() {
			return false
		}
	}
	return true
}

// AnyTrue reports whether at least one lane is set.
func (m Mask[M, S]) AnyTrue() bool {
	return !m.IsEmpty()
}

// CountTrue returns the number of set lanes across the chain.
func (m Mask[M, S]) CountTrue() int {
	n := 0
	for i := 0; i < len(m.segs); i++ {
		n += m.segs[i].CountTrue()
	}
	return n
}

// Lane reports whether logical lane i is set.
func (m Mask[M, S]) Lane(i int) bool {
	var z M
	w := z.Lanes()
	if i < 0 || i >= len(m.segs)*w {
		panic(fmt.Sprintf("simdarray: mask lane %d out of range [0,%d)", i, len(m.segs)*w))
	}
	return m.segs[i/w].Lane(i % w)
}

// ToBitSet writes the chain into dst, lane i as bit i, and returns dst.
// Bits at and past Lanes() are left alone. A nil dst allocates a new set.
func (m Mask[M, S]) ToBitSet(dst *bitset.BitSet) *bitset.BitSet {
	n := m.Lanes()
	if dst == nil {
		dst = bitset.New(uint(n))
	}
	var z M
	w := z.Lanes()
	for i := 0; i < len(m.segs); i++ {
		seg := m.segs[i]
		for j := range w {
			dst.SetTo(uint(i*w+j), seg.Lane(j))
		}
	}
	return dst
}

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
)

// Vector is a logical vector of len(S) × V.Lanes() lanes of T, stored as a
// chain of len(S) native segments. The zero value has every lane zero.
//
// Vector is a plain value: assignment copies every segment, and distinct
// values may be used from distinct goroutines without synchronization.
type Vector[V Native[V, T], T hwy.Lanes, S Segments[V]] struct {
	segs S
}

// Broadcast returns a vector with every lane set to x.
func Broadcast[V Native[V, T], T hwy.Lanes, S Segments[V]](x T) Vector[V, T, S] {
	var v Vector[V, T, S]
	v.Broadcast(x)
	return v
}

// FromSlice returns a vector loaded from src. See Vector.Load.
func FromSlice[V Native[V, T], T hwy.Lanes, S Segments[V]](src []T, f hwy.Flags) Vector[V, T, S] {
	var v Vector[V, T, S]
	v.Load(src, f)
	return v
}

// IndexRamp returns the vector offset, offset+1, ..., offset+Lanes()-1.
func IndexRamp[V Native[V, T], T hwy.Lanes, S Segments[V]](offset int) Vector[V, T, S] {
	var v Vector[V, T, S]
	v.Iota(offset)
	return v
}

// NumSegments returns the chain depth N.
func (v Vector[V, T, S]) NumSegments() int {
	return len(v.segs)
}

// SegmentLanes returns the lane count of one native segment.
func (v Vector[V, T, S]) SegmentLanes() int {
	var z V
	return z.Lanes()
}

// Lanes returns the total logical lane count, N × V.Lanes().
func (v Vector[V, T, S]) Lanes() int {
	return len(v.segs) * v.SegmentLanes()
}

// Head returns segment 0.
func (v Vector[V, T, S]) Head() V {
	return v.segs[0]
}

// Segment returns segment i.
func (v Vector[V, T, S]) Segment(i int) V {
	return v.segs[i]
}

// SetSegment replaces segment i.
func (v *Vector[V, T, S]) SetSegment(i int, x V) {
	v.segs[i] = x
}

// Lane returns logical lane i.
func (v Vector[V, T, S]) Lane(i int) T {
	w := v.SegmentLanes()
	if i < 0 || i >= len(v.segs)*w {
		panic(fmt.Sprintf("simdarray: lane %d out of range [0,%d)", i, len(v.segs)*w))
	}
	return v.segs[i/w].Lane(i % w)
}

// Broadcast sets every lane of every segment to x.
func (v *Vector[V, T, S]) Broadcast(x T) {
	var z V
	seg := z.Splat(x)
	for i := 0; i < len(v.segs); i++ {
		v.segs[i] = seg
	}
}

// Load reads Lanes() elements from src. Segment i reads from
// src[i*V.Lanes():] with the same flags, so an aligned buffer stays aligned
// for every segment.
//
// The caller must guarantee len(src) >= Lanes(). A shorter buffer panics.
func (v *Vector[V, T, S]) Load(src []T, f hwy.Flags) {
	var z V
	w := z.Lanes()
	hwy.AssertLen("simdarray.Vector.Load", len(src), len(v.segs)*w)
	for i := 0; i < len(v.segs); i++ {
		v.segs[i] = z.Load(src[i*w:], f)
	}
}

// Store writes Lanes() elements to dst, segment i at dst[i*V.Lanes():].
//
// The caller must guarantee len(dst) >= Lanes(). A shorter buffer panics.
func (v Vector[V, T, S]) Store(dst []T, f hwy.Flags) {
	var z V
	w := z.Lanes()
	hwy.AssertLen("simdarray.Vector.Store", len(dst), len(v.segs)*w)
	for i := 0; i < len(v.segs); i++ {
		v.segs[i].Store(dst[i*w:], f)
	}
}

// Iota sets the lanes to offset, offset+1, ..., offset+Lanes()-1. Segment i
// is the native ramp plus offset+i*V.Lanes().
func (v *Vector[V, T, S]) Iota(offset int) {
	var z V
	ramp := z.Iota()
	w := z.Lanes()
	for i := 0; i < len(v.segs); i++ {
		v.segs[i] = ramp.Apply(hwy.OpAdd, z.Splat(T(offset+i*w)))
	}
}

// Call replaces every segment x with fn(x), head first. It routes native
// operations the chain does not wrap itself, for example:
//
//	v.Call(wide.Vec8[float32].Sqrt)
func (v *Vector[V, T, S]) Call(fn func(V) V) {
	for i := 0; i < len(v.segs); i++ {
		v.segs[i] = fn(v.segs[i])
	}
}

// Assign is the compound assignment v op= rhs: segment i becomes
// op(v.segs[i], rhs.segs[i]). Numeric behavior is the native one.
func (v *Vector[V, T, S]) Assign(op hwy.Op, rhs Vector[V, T, S]) {
	for i := 0; i < len(v.segs); i++ {
		v.segs[i] = v.segs[i].Apply(op, rhs.segs[i])
	}
}

// Apply returns op(v, rhs) without modifying v.
func (v Vector[V, T, S]) Apply(op hwy.Op, rhs Vector[V, T, S]) Vector[V, T, S] {
	v.Assign(op, rhs)
	return v
}

// AddAssign is v += rhs.
func (v *Vector[V, T, S]) AddAssign(rhs Vector[V, T, S]) { v.Assign(hwy.OpAdd, rhs) }

// SubAssign is v -= rhs.
func (v *Vector[V, T, S]) SubAssign(rhs Vector[V, T, S]) { v.Assign(hwy.OpSub, rhs) }

// MulAssign is v *= rhs.
func (v *Vector[V, T, S]) MulAssign(rhs Vector[V, T, S]) { v.Assign(hwy.OpMul, rhs) }

// DivAssign is v /= rhs.
func (v *Vector[V, T, S]) DivAssign(rhs Vector[V, T, S]) { v.Assign(hwy.OpDiv, rhs) }

// RemAssign is v %= rhs.
func (v *Vector[V, T, S]) RemAssign(rhs Vector[V, T, S]) { v.Assign(hwy.OpRem, rhs) }

// AndAssign is v &= rhs.
func (v *Vector[V, T, S]) AndAssign(rhs Vector[V, T, S]) { v.Assign(hwy.OpAnd, rhs) }

// OrAssign is v |= rhs.
func (v *Vector[V, T, S]) OrAssign(rhs Vector[V, T, S]) { v.Assign(hwy.OpOr, rhs) }

// XorAssign is v ^= rhs.
func (v *Vector[V, T, S]) XorAssign(rhs Vector[V, T, S]) { v.Assign(hwy.OpXor, rhs) }

// ShlAssign is v <<= rhs, each lane shifted by the matching rhs lane.
func (v *Vector[V, T, S]) ShlAssign(rhs Vector[V, T, S]) { v.Assign(hwy.OpShl, rhs) }

// ShrAssign is v >>= rhs, each lane shifted by the matching rhs lane.
func (v *Vector[V, T, S]) ShrAssign(rhs Vector[V, T, S]) { v.Assign(hwy.OpShr, rhs) }

// Sum returns the sum of all lanes, head segment first.
func (v Vector[V, T, S]) Sum() T {
	var sum T
	w := v.SegmentLanes()
	for i := 0; i < len(v.segs); i++ {
		for j := range w {
			sum += v.segs[i].Lane(j)
		}
	}
	return sum
}

// LoadConverted reads v.Lanes() elements of another lane type U from src,
// converting each with a Go numeric conversion before handing the segment
// to the native Load. The Aligned hint is dropped because the converted
// block lives in a temporary buffer.
func LoadConverted[V Native[V, T], T hwy.Lanes, S Segments[V], U hwy.Lanes](v *Vector[V, T, S], src []U, f hwy.Flags) {
	var z V
	w := z.Lanes()
	hwy.AssertLen("simdarray.LoadConverted", len(src), len(v.segs)*w)

	var buf [64]T
	tmp := buf[:0]
	if w <= len(buf) {
		tmp = buf[:w]
	} else {
		tmp = make([]T, w)
	}
	f &^= hwy.Aligned
	for i := 0; i < len(v.segs); i++ {
		part := src[i*w : i*w+w]
		for j, x := range part {
			tmp[j] = T(x)
		}
		v.segs[i] = z.Load(tmp, f)
	}
}

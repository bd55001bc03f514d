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


package wide

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/ajroetker/go-simdarray/hwy"
	"github.com/chewxy/math32"
)

// Array is the set of lane storage shapes a native vector can take.
type Array[T hwy.Lanes] interface {
	[1]T | [2]T | [4]T | [8]T | [16]T | [32]T | [64]T
}

// Vec is a native vector of len(A) lanes of T.
// The zero value has every lane set to zero.
type Vec[T hwy.Lanes, A Array[T]] struct {
	lanes A
}

// Native vector widths.
type (
	Vec1[T hwy.Lanes]  = Vec[T, [1]T]
	Vec2[T hwy.Lanes]  = Vec[T, [2]T]
	Vec4[T hwy.Lanes]  = Vec[T, [4]T]
	Vec8[T hwy.Lanes]  = Vec[T, [8]T]
	Vec16[T hwy.Lanes] = Vec[T, [16]T]
	Vec32[T hwy.Lanes] = Vec[T, [32]T]
	Vec64[T hwy.Lanes] = Vec[T, [64]T]
)

// lanesOf views the lane array as a slice without copying.
func lanesOf[T hwy.Lanes, A Array[T]](a *A) []T {
	return unsafe.Slice((*T)(unsafe.Pointer(a)), len(*a))
}

// Lanes returns the number of lanes, a constant of the type.
func (v Vec[T, A]) Lanes() int {
	return len(v.lanes)
}

// Splat returns a vector with every lane set to x.
func (Vec[T, A]) Splat(x T) Vec[T, A] {
	var r Vec[T, A]
	s := lanesOf[T](&r.lanes)
	for i := range s {
		s[i] = x
	}
	return r
}

// Iota returns the index ramp 0, 1, 2, ..., Lanes()-1.
func (Vec[T, A]) Iota() Vec[T, A] {
	var r Vec[T, A]
	s := lanesOf[T](&r.lanes)
	for i := range s {
		s[i] = T(i)
	}
	return r
}

// Load returns a vector read from the first Lanes() elements of src.
// It panics if src is shorter than that.
func (Vec[T, A]) Load(src []T, f hwy.Flags) Vec[T, A] {
	var r Vec[T, A]
	s := lanesOf[T](&r.lanes)
	hwy.AssertLen("wide.Load", len(src), len(s))
	if f.IsAligned() {
		hwy.AssertAligned("wide.Load", src, len(s))
	}
	_ = src[len(s)-1] // bounds check hint
	copy(s, src)
	return r
}

// Store writes the vector to the first Lanes() elements of dst.
// It panics if dst is shorter than that.
func (v Vec[T, A]) Store(dst []T, f hwy.Flags) {
	s := lanesOf[T](&v.lanes)
	hwy.AssertLen("wide.Store", len(dst), len(s))
	if f.IsAligned() {
		hwy.AssertAligned("wide.Store", dst, len(s))
	}
	_ = dst[len(s)-1] // bounds check hint
	copy(dst, s)
}

// Lane returns lane i.
func (v Vec[T, A]) Lane(i int) T {
	return v.lanes[i]
}

// WithLane returns a copy of v with lane i set to x.
func (v Vec[T, A]) WithLane(i int, x T) Vec[T, A] {
	v.lanes[i] = x
	return v
}

// Apply returns op(v, rhs) lane by lane, as defined by hwy.ApplyScalar.
func (v Vec[T, A]) Apply(op hwy.Op, rhs Vec[T, A]) Vec[T, A] {
	a := lanesOf[T](&v.lanes)
	b := lanesOf[T](&rhs.lanes)
	if applyAccelerated(op, a, b) {
		return v
	}
	for i := range a {
		a[i] = hwy.ApplyScalar(op, a[i], b[i])
	}
	return v
}

// Add returns v + rhs.
func (v Vec[T, A]) Add(rhs Vec[T, A]) Vec[T, A] { return v.Apply(hwy.OpAdd, rhs) }

// Sub returns v - rhs.
func (v Vec[T, A]) Sub(rhs Vec[T, A]) Vec[T, A] { return v.Apply(hwy.OpSub, rhs) }

// Mul returns v * rhs.
func (v Vec[T, A]) Mul(rhs Vec[T, A]) Vec[T, A] { return v.Apply(hwy.OpMul, rhs) }

// Div returns v / rhs.
func (v Vec[T, A]) Div(rhs Vec[T, A]) Vec[T, A] { return v.Apply(hwy.OpDiv, rhs) }

// Neg negates every lane. Unsigned lanes wrap.
func (v Vec[T, A]) Neg() Vec[T, A] {
	s := lanesOf[T](&v.lanes)
	for i := range s {
		s[i] = -s[i]
	}
	return v
}

// Abs returns the absolute value of every lane.
func (v Vec[T, A]) Abs() Vec[T, A] {
	s := lanesOf[T](&v.lanes)
	for i := range s {
		if s[i] < 0 {
			s[i] = -s[i]
		}
	}
	return v
}

// Sqrt returns the square root of every lane. Integer lanes are truncated.
func (v Vec[T, A]) Sqrt() Vec[T, A] {
	s := lanesOf[T](&v.lanes)
	switch {
	case hwy.IsFloat[T]() && unsafe.Sizeof(s[0]) == 4:
		for i := range s {
			s[i] = T(math32.Sqrt(float32(s[i])))
		}
	default:
		for i := range s {
			s[i] = T(math.Sqrt(float64(s[i])))
		}
	}
	return v
}

// Equal returns the mask of lanes where v == rhs.
func (v Vec[T, A]) Equal(rhs Vec[T, A]) Mask[T, A] {
	return v.compare(rhs, func(a, b T) bool { return a == b })
}

// NotEqual returns the mask of lanes where v != rhs.
func (v Vec[T, A]) NotEqual(rhs Vec[T, A]) Mask[T, A] {
	return v.compare(rhs, func(a, b T) bool { return a != b })
}

// Less returns the mask of lanes where v < rhs.
func (v Vec[T, A]) Less(rhs Vec[T, A]) Mask[T, A] {
	return v.compare(rhs, func(a, b T) bool { return a < b })
}

// LessEqual returns the mask of lanes where v <= rhs.
func (v Vec[T, A]) LessEqual(rhs Vec[T, A]) Mask[T, A] {
	return v.compare(rhs, func(a, b T) bool { return a <= b })
}

// Greater returns the mask of lanes where v > rhs.
func (v Vec[T, A]) Greater(rhs Vec[T, A]) Mask[T, A] {
	return v.compare(rhs, func(a, b T) bool { return a > b })
}

// GreaterEqual returns the mask of lanes where v >= rhs.
func (v Vec[T, A]) GreaterEqual(rhs Vec[T, A]) Mask[T, A] {
	return v.compare(rhs, func(a, b T) bool { return a >= b })
}

func (v Vec[T, A]) compare(rhs Vec[T, A], pred func(a, b T) bool) Mask[T, A] {
	a := lanesOf[T](&v.lanes)
	b := lanesOf[T](&rhs.lanes)
	var m Mask[T, A]
	for i := range a {
		if pred(a[i], b[i]) {
			m.bits |= 1 << uint(i)
		}
	}
	return m
}

// String formats the lanes like a slice.
func (v Vec[T, A]) String() string {
	return fmt.Sprint(lanesOf[T](&v.lanes))
}

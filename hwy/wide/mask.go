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
	"math/bits"

	"github.com/ajroetker/go-simdarray/hwy"
)

// Mask is the predicate produced by comparing two Vec[T, A]. Lane i is
// stored in bit i, the way AVX-512 k-registers and Highway mask bits work.
type Mask[T hwy.Lanes, A Array[T]] struct {
	bits uint64
}

// Native mask widths, one per native vector width.
type (
	Mask1[T hwy.Lanes]  = Mask[T, [1]T]
	Mask2[T hwy.Lanes]  = Mask[T, [2]T]
	Mask4[T hwy.Lanes]  = Mask[T, [4]T]
	Mask8[T hwy.Lanes]  = Mask[T, [8]T]
	Mask16[T hwy.Lanes] = Mask[T, [16]T]
	Mask32[T hwy.Lanes] = Mask[T, [32]T]
	Mask64[T hwy.Lanes] = Mask[T, [64]T]
)

// Lanes returns the number of lanes.
func (Mask[T, A]) Lanes() int {
	var a A
	return len(a)
}

func (m Mask[T, A]) all() uint64 {
	n := m.Lanes()
	if n >= 64 {
		return ^uint64(0)
	}
	return 1<<uint(n) - 1
}

// Splat returns a mask with every lane set to b.
func (m Mask[T, A]) Splat(b bool) Mask[T, A] {
	if b {
		return Mask[T, A]{bits: m.all()}
	}
	return Mask[T, A]{}
}

// FromBits returns a mask whose lane i is bit i of b. Bits past Lanes()
// are dropped.
func (m Mask[T, A]) FromBits(b uint64) Mask[T, A] {
	return Mask[T, A]{bits: b & m.all()}
}

// Bits returns the mask as a bit set, lane i in bit i.
func (m Mask[T, A]) Bits() uint64 {
	return m.bits
}

// IsFull reports whether every lane is set.
func (m Mask[T, A]) IsFull() bool {
	return m.bits == m.all()
}

// IsEmpty reports whether no lane is set.
func (m Mask[T, A]) IsEmpty() bool {
	return m.bits == 0
}

// CountTrue returns the number of set lanes.
func (m Mask[T, A]) CountTrue() int {
	return bits.OnesCount64(m.bits)
}

// Lane reports whether lane i is set. It panics if i is out of range.
func (m Mask[T, A]) Lane(i int) bool {
	if i < 0 || i >= m.Lanes() {
		panic(fmt.Sprintf("wide: mask lane %d out of range [0,%d)", i, m.Lanes()))
	}
	return m.bits>>uint(i)&1 == 1
}

// And returns the lanes set in both m and o.
func (m Mask[T, A]) And(o Mask[T, A]) Mask[T, A] {
	return Mask[T, A]{bits: m.bits & o.bits}
}

// Or returns the lanes set in m or o.
func (m Mask[T, A]) Or(o Mask[T, A]) Mask[T, A] {
	return Mask[T, A]{bits: m.bits | o.bits}
}

// Not returns the complement of m.
func (m Mask[T, A]) Not() Mask[T, A] {
	return Mask[T, A]{bits: ^m.bits & m.all()}
}

// String formats the mask as one character per lane, lane 0 first.
func (m Mask[T, A]) String() string {
	buf := make([]byte, m.Lanes())
	for i := range buf {
		buf[i] = '0'
		if m.bits>>uint(i)&1 == 1 {
			buf[i] = '1'
		}
	}
	return string(buf)
}

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

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/chewxy/math32"
)

// Op names an element-wise binary operation. Native vectors implement one
// Apply(op, rhs) entry point instead of one method per operator, and the
// composite vectors forward the same Op to every segment.
type Op uint8

const (
	// OpAdd is lane-wise a + b.
	OpAdd Op = iota
	// OpSub is lane-wise a - b.
	OpSub
	// OpMul is lane-wise a * b.
	OpMul
	// OpDiv is lane-wise a / b. Integer division by zero panics, as in Go.
	OpDiv
	// OpRem is lane-wise remainder. Floats follow math.Mod.
	OpRem
	// OpAnd is lane-wise bitwise AND of the lane bit patterns.
	OpAnd
	// OpOr is lane-wise bitwise OR of the lane bit patterns.
	OpOr
	// OpXor is lane-wise bitwise XOR of the lane bit patterns.
	OpXor
	// OpShl shifts each lane left by the count held in the matching rhs lane.
	OpShl
	// OpShr shifts each lane right by the count held in the matching rhs lane.
	// Signed integers shift arithmetically; everything else logically.
	OpShr

	numOps
)

var opNames = [numOps]string{
	OpAdd: "add",
	OpSub: "sub",
	OpMul: "mul",
	OpDiv: "div",
	OpRem: "rem",
	OpAnd: "and",
	OpOr:  "or",
	OpXor: "xor",
	OpShl: "shl",
	OpShr: "shr",
}

// String returns the lower-case name of the operation.
func (op Op) String() string {
	if op < numOps {
		return opNames[op]
	}
	return fmt.Sprintf("Op(%d)", uint8(op))
}

// IsArithmetic reports whether op is one of add, sub, mul, div, rem.
func (op Op) IsArithmetic() bool { return op <= OpRem }

// IsBitwise reports whether op is one of and, or, xor.
func (op Op) IsBitwise() bool { return op >= OpAnd && op <= OpXor }

// IsShift reports whether op is shl or shr.
func (op Op) IsShift() bool { return op == OpShl || op == OpShr }

// AllOps returns every operation in declaration order.
func AllOps() []Op {
	ops := make([]Op, numOps)
	for i := range ops {
		ops[i] = Op(i)
	}
	return ops
}

// ApplyScalar computes op on a single pair of lanes. It is the reference
// semantics for every native vector in this module: SIMD backends must
// produce the same bits lane by lane.
//
// Bitwise and shift operations act on the lane's bit pattern, which for
// floating-point lanes is the IEEE-754 encoding (as andps/orps/xorps and
// vector shifts do on a float register).
func ApplyScalar[T Lanes](op Op, a, b T) T {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	case OpRem:
		return rem(a, b)
	case OpAnd:
		return fromBits[T](toBits(a) & toBits(b))
	case OpOr:
		return fromBits[T](toBits(a) | toBits(b))
	case OpXor:
		return fromBits[T](toBits(a) ^ toBits(b))
	case OpShl:
		return fromBits[T](toBits(a) << shiftCount(b))
	case OpShr:
		return shr(a, shiftCount(b))
	}
	panic(fmt.Sprintf("hwy: unknown op %v", op))
}

type laneKind uint8

const (
	kindUnsigned laneKind = iota
	kindSigned
	kindFloat
)

func kindOf[T Lanes]() laneKind {
	var one T = 1
	if one/2 != 0 {
		return kindFloat
	}
	var zero T
	if zero-1 < zero {
		return kindSigned
	}
	return kindUnsigned
}

// IsFloat reports whether T is a floating-point lane type.
func IsFloat[T Lanes]() bool {
	return kindOf[T]() == kindFloat
}

// IsSigned reports whether T is a signed integer lane type.
func IsSigned[T Lanes]() bool {
	return kindOf[T]() == kindSigned
}

func rem[T Lanes](a, b T) T {
	switch kindOf[T]() {
	case kindFloat:
		if unsafe.Sizeof(a) == 4 {
			return T(math32.Mod(float32(a), float32(b)))
		}
		return T(math.Mod(float64(a), float64(b)))
	case kindSigned:
		return T(int64(a) % int64(b))
	default:
		return T(uint64(a) % uint64(b))
	}
}

func shr[T Lanes](a T, n uint64) T {
	switch kindOf[T]() {
	case kindSigned:
		return T(int64(a) >> n)
	case kindUnsigned:
		return T(uint64(a) >> n)
	default:
		return fromBits[T](toBits(a) >> n)
	}
}

// shiftCount interprets a lane as a shift count. Counts are unsigned, so a
// negative integer count behaves like a very large one.
func shiftCount[T Lanes](b T) uint64 {
	if kindOf[T]() == kindFloat {
		f := float64(b)
		switch {
		case !(f > 0):
			return 0
		case f >= 64:
			return 64
		}
		return uint64(f)
	}
	return uint64(b)
}

func toBits[T Lanes](x T) uint64 {
	p := unsafe.Pointer(&x)
	switch unsafe.Sizeof(x) {
	case 1:
		return uint64(*(*uint8)(p))
	case 2:
		return uint64(*(*uint16)(p))
	case 4:
		return uint64(*(*uint32)(p))
	default:
		return *(*uint64)(p)
	}
}

func fromBits[T Lanes](b uint64) T {
	var x T
	p := unsafe.Pointer(&x)
	switch unsafe.Sizeof(x) {
	case 1:
		*(*uint8)(p) = uint8(b)
	case 2:
		*(*uint16)(p) = uint16(b)
	case 4:
		*(*uint32)(p) = uint32(b)
	default:
		*(*uint64)(p) = b
	}
	return x
}

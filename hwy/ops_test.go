package hwy

import (
	"math"
	"testing"
)

func TestOpString(t *testing.T) {
	want := []string{"add", "sub", "mul", "div", "rem", "and", "or", "xor", "shl", "shr"}
	ops := AllOps()
	if len(ops) != len(want) {
		t.Fatalf("AllOps: got %d ops, want %d", len(ops), len(want))
	}
	for i, op := range ops {
		if op.String() != want[i] {
			t.Errorf("Op(%d).String() = %q, want %q", i, op.String(), want[i])
		}
	}
	if got := Op(200).String(); got != "Op(200)" {
		t.Errorf("Op(200).String() = %q", got)
	}
}

func TestOpClasses(t *testing.T) {
	for _, op := range AllOps() {
		n := 0
		for _, is := range []bool{op.IsArithmetic(), op.IsBitwise(), op.IsShift()} {
			if is {
				n++
			}
		}
		if n != 1 {
			t.Errorf("%v belongs to %d classes, want 1", op, n)
		}
	}
	if !OpRem.IsArithmetic() || !OpXor.IsBitwise() || !OpShr.IsShift() {
		t.Error("class boundaries are off")
	}
}

func TestLaneKinds(t *testing.T) {
	if !IsFloat[float32]() || !IsFloat[float64]() {
		t.Error("floats not detected")
	}
	if IsFloat[int32]() || IsFloat[uint8]() {
		t.Error("integers reported as floats")
	}
	if !IsSigned[int8]() || !IsSigned[int64]() {
		t.Error("signed ints not detected")
	}
	if IsSigned[uint16]() || IsSigned[float32]() {
		t.Error("unsigned or float reported as signed")
	}
}

func TestApplyScalarInt32(t *testing.T) {
	tests := []struct {
		op   Op
		a, b int32
		want int32
	}{
		{OpAdd, 7, -3, 4},
		{OpSub, 7, -3, 10},
		{OpMul, 7, -3, -21},
		{OpDiv, -7, 2, -3},
		{OpRem, -7, 2, -1},
		{OpAnd, 0b1100, 0b1010, 0b1000},
		{OpOr, 0b1100, 0b1010, 0b1110},
		{OpXor, 0b1100, 0b1010, 0b0110},
		{OpShl, 3, 4, 48},
		{OpShr, -64, 3, -8},
		{OpShr, 64, 3, 8},
		{OpAdd, math.MaxInt32, 1, math.MinInt32},
	}
	for _, tt := range tests {
		if got := ApplyScalar(tt.op, tt.a, tt.b); got != tt.want {
			t.Errorf("ApplyScalar(%v, %d, %d) = %d, want %d", tt.op, tt.a, tt.b, got, tt.want)
		}
	}
}

func TestApplyScalarUint8(t *testing.T) {
	tests := []struct {
		op   Op
		a, b uint8
		want uint8
	}{
		{OpAdd, 250, 10, 4},
		{OpSub, 3, 5, 254},
		{OpRem, 200, 7, 4},
		{OpShr, 0xf0, 4, 0x0f},
		{OpShl, 0xf0, 4, 0x00},
		{OpShl, 1, 9, 0},
		{OpXor, 0xff, 0x0f, 0xf0},
	}
	for _, tt := range tests {
		if got := ApplyScalar(tt.op, tt.a, tt.b); got != tt.want {
			t.Errorf("ApplyScalar(%v, %d, %d) = %d, want %d", tt.op, tt.a, tt.b, got, tt.want)
		}
	}
}

func TestApplyScalarFloat(t *testing.T) {
	tests := []struct {
		op   Op
		a, b float32
		want float32
	}{
		{OpAdd, 1.5, 2.25, 3.75},
		{OpSub, 1.5, 2.25, -0.75},
		{OpMul, 1.5, 2, 3},
		{OpDiv, 1, 4, 0.25},
		{OpRem, 7.5, 2, 1.5},
		{OpRem, -7.5, 2, -1.5},
		{OpXor, -2, float32(math.Float32frombits(1 << 31)), 2},
		{OpAnd, -2, float32(math.Float32frombits(0x7fffffff)), 2},
		{OpOr, 2, float32(math.Float32frombits(1 << 31)), -2},
	}
	for _, tt := range tests {
		if got := ApplyScalar(tt.op, tt.a, tt.b); got != tt.want {
			t.Errorf("ApplyScalar(%v, %v, %v) = %v, want %v", tt.op, tt.a, tt.b, got, tt.want)
		}
	}

	if got := ApplyScalar(OpRem, 7.5, 2.0); got != 1.5 {
		t.Errorf("float64 rem: got %v, want 1.5", got)
	}
	if got := ApplyScalar(OpDiv, float64(1), 0); !math.IsInf(got, 1) {
		t.Errorf("float64 1/0: got %v, want +Inf", got)
	}
}

func TestApplyScalarFloatShift(t *testing.T) {
	one := float32(1)
	// Shifting the bit pattern of 1.0 right by 23 leaves the biased exponent.
	got := ApplyScalar(OpShr, one, 23)
	if bits := math.Float32bits(got); bits != 127 {
		t.Errorf("1.0 >> 23: got bits %d, want 127", bits)
	}
	got = ApplyScalar(OpShl, float32(math.Float32frombits(127)), 23)
	if got != 1 {
		t.Errorf("bits(127) << 23: got %v, want 1", got)
	}
	if got := ApplyScalar(OpShr, one, -5); got != one {
		t.Errorf("negative float shift count should be 0, got %v", got)
	}
}

func TestApplyScalarUnknownOpPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("unknown op did not panic")
		}
	}()
	ApplyScalar(numOps, int32(1), 2)
}

func TestApplyScalarIntDivideByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("integer division by zero did not panic")
		}
	}()
	ApplyScalar(OpDiv, int32(1), 0)
}

func TestFlags(t *testing.T) {
	tests := []struct {
		f    Flags
		want string
	}{
		{Unaligned, "unaligned"},
		{Aligned, "aligned"},
		{Aligned | Streaming, "aligned|streaming"},
		{Streaming | Prefetch, "streaming|prefetch"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("Flags(%d).String() = %q, want %q", tt.f, got, tt.want)
		}
	}
	f := Aligned | Prefetch
	if !f.IsAligned() || f.IsStreaming() || !f.IsPrefetch() {
		t.Errorf("Flags(%v) predicates are wrong", f)
	}
}

func TestAssertLen(t *testing.T) {
	AssertLen("ok", 8, 8)
	defer func() {
		r := recover()
		if DebugChecks && r == nil {
			t.Error("AssertLen did not panic in a debug build")
		}
		if !DebugChecks && r != nil {
			t.Errorf("AssertLen panicked without hwydebug: %v", r)
		}
	}()
	AssertLen("short", 3, 8)
}

package hwy

import "testing"

func TestDispatch(t *testing.T) {
	level := CurrentLevel()
	width := CurrentWidth()
	name := CurrentName()

	t.Logf("Dispatch level: %v (%s), width: %d bytes", level, name, width)

	if width <= 0 {
		t.Error("CurrentWidth should be positive")
	}

	if name == "" || name == "unknown" {
		t.Errorf("CurrentName = %q", name)
	}
}

func TestDispatchLevel(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		name  string
		width int
	}{
		{DispatchScalar, "scalar", 16},
		{DispatchSSE2, "sse2", 16},
		{DispatchAVX2, "avx2", 32},
		{DispatchAVX512, "avx512", 64},
		{DispatchNEON, "neon", 16},
		{DispatchLevel(99), "unknown", 16},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.name {
			t.Errorf("DispatchLevel(%d).String() = %q, want %q", tt.level, got, tt.name)
		}
		if got := tt.level.Width(); got != tt.width {
			t.Errorf("%s.Width() = %d, want %d", tt.name, got, tt.width)
		}
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("HWY_NO_SIMD", tt.val)
		if got := NoSimdEnv(); got != tt.want {
			t.Errorf("HWY_NO_SIMD=%q: NoSimdEnv() = %v, want %v", tt.val, got, tt.want)
		}
	}
}

func TestMaxLanes(t *testing.T) {
	maxF32 := MaxLanes[float32]()
	maxF64 := MaxLanes[float64]()
	maxI32 := MaxLanes[int32]()
	maxU8 := MaxLanes[uint8]()

	t.Logf("MaxLanes: float32=%d, float64=%d, int32=%d, uint8=%d", maxF32, maxF64, maxI32, maxU8)

	if maxF32 <= 0 {
		t.Error("MaxLanes[float32] should be positive")
	}

	// float64 uses twice as much space, so should have half the lanes
	if maxF64*2 != maxF32 {
		t.Errorf("MaxLanes: expected float64 lanes (%d) to be half of float32 lanes (%d)", maxF64, maxF32)
	}
	if maxI32 != maxF32 || maxU8 != CurrentWidth() {
		t.Errorf("MaxLanes: int32=%d uint8=%d at width %d", maxI32, maxU8, CurrentWidth())
	}
}

func TestTags(t *testing.T) {
	tags := FixedTags[float32]()
	want := []struct {
		name         string
		width, lanes int
	}{
		{"512bit", 64, 16},
		{"256bit", 32, 8},
		{"128bit", 16, 4},
	}
	if len(tags) != len(want) {
		t.Fatalf("FixedTags: got %d tags, want %d", len(tags), len(want))
	}
	for i, tag := range tags {
		if tag.Name() != want[i].name || tag.Width() != want[i].width || tag.Lanes() != want[i].lanes {
			t.Errorf("tag %d = (%s, %d, %d), want %+v", i, tag.Name(), tag.Width(), tag.Lanes(), want[i])
		}
	}

	if got := (FixedTag128[int16]{}).Lanes(); got != 8 {
		t.Errorf("FixedTag128[int16].Lanes() = %d, want 8", got)
	}

	var native Tag = ScalableTag[float64]{}
	if native.Lanes() != MaxLanes[float64]() || native.Width() != CurrentWidth() || native.Name() != CurrentName() {
		t.Errorf("ScalableTag disagrees with the dispatch level: %d lanes, %d bytes, %s",
			native.Lanes(), native.Width(), native.Name())
	}
}

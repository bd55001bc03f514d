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

// Tag describes a vector size. Every tag reports its lane count, so a list of
// tags can be handed to simdarray.SelectBest to pick the best native width
// for a logical vector length.
type Tag interface {
	// Width returns the width in bytes (16 for 128-bit, 32 for 256-bit, etc.)
	Width() int

	// Name returns a human-readable name for this tag ("avx2", "128bit", etc.)
	Name() string

	// Lanes returns how many elements of the tag's lane type fit in Width bytes.
	Lanes() int
}

// ScalableTag adapts to the widest SIMD available at runtime. It is the
// "native" width: a vector of ScalableTag lanes fills exactly one register.
//
// Usage:
//
//	tag := hwy.ScalableTag[float32]{}
//	lanes := tag.Lanes()
type ScalableTag[T Lanes] struct{}

// Width returns the current runtime SIMD width in bytes.
func (ScalableTag[T]) Width() int {
	return CurrentWidth()
}

// Name returns the current runtime SIMD target name.
func (ScalableTag[T]) Name() string {
	return currentLevel.String()
}

// Lanes returns the number of T lanes at the current SIMD width.
func (ScalableTag[T]) Lanes() int {
	return MaxLanes[T]()
}

// FixedTag128 forces 128-bit vectors (SSE, NEON).
type FixedTag128[T Lanes] struct{}

// Width returns 16 bytes (128 bits).
func (FixedTag128[T]) Width() int {
	return 16
}

// Name returns "128bit".
func (FixedTag128[T]) Name() string {
	return "128bit"
}

// Lanes returns the number of T values that fit in 128 bits.
func (FixedTag128[T]) Lanes() int {
	return lanesIn[T](16)
}

// FixedTag256 forces 256-bit vectors (AVX2).
type FixedTag256[T Lanes] struct{}

// Width returns 32 bytes (256 bits).
func (FixedTag256[T]) Width() int {
	return 32
}

// Name returns "256bit".
func (FixedTag256[T]) Name() string {
	return "256bit"
}

// Lanes returns the number of T values that fit in 256 bits.
func (FixedTag256[T]) Lanes() int {
	return lanesIn[T](32)
}

// FixedTag512 forces 512-bit vectors (AVX-512).
type FixedTag512[T Lanes] struct{}

// Width returns 64 bytes (512 bits).
func (FixedTag512[T]) Width() int {
	return 64
}

// Name returns "512bit".
func (FixedTag512[T]) Name() string {
	return "512bit"
}

// Lanes returns the number of T values that fit in 512 bits.
func (FixedTag512[T]) Lanes() int {
	return lanesIn[T](64)
}

// FixedTags returns the fixed-width tags for T from widest to narrowest,
// the order simdarray.SelectBest expects.
func FixedTags[T Lanes]() []Tag {
	return []Tag{FixedTag512[T]{}, FixedTag256[T]{}, FixedTag128[T]{}}
}

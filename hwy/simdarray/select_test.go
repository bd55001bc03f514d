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
	"testing"

	"github.com/ajroetker/go-simdarray/hwy"
	"github.com/ajroetker/go-simdarray/hwy/wide"
	"github.com/stretchr/testify/assert"
)

type width struct {
	lanes int
	name  string
}

func (w width) Lanes() int { return w.lanes }

var (
	w8 = width{8, "w8"}
	w4 = width{4, "w4"}
	w1 = width{1, "w1"}
)

func TestSelectBest(t *testing.T) {
	tests := []struct {
		n    int
		want width
	}{
		{0, w1},
		{1, w1},
		{3, w1},
		{4, w4},
		{5, w4},
		{7, w4},
		{8, w8},
		{100, w8},
		{-1, w1},
	}
	for _, tt := range tests {
		got := SelectBest(tt.n, w8, w4, w1)
		assert.Equal(t, tt.want.name, got.name, "n=%d", tt.n)
	}
}

func TestSelectBestSingle(t *testing.T) {
	for _, n := range []int{0, 1, 8, 100} {
		assert.Equal(t, "w8", SelectBest(n, w8).name)
	}
}

func TestSelectBestTie(t *testing.T) {
	a := width{4, "a"}
	b := width{4, "b"}
	assert.Equal(t, "a", SelectBest(4, w8, a, b, w1).name)
	assert.Equal(t, "a", SelectBest(9, a, b).name)
	// Nothing fits: the last-listed candidate.
	assert.Equal(t, "b", SelectBest(2, a, b).name)
}

func TestSelectBestListOrder(t *testing.T) {
	// Ascending lists still pick the first candidate that fits.
	assert.Equal(t, "w1", SelectBest(5, w1, w4, w8).name)
	assert.Equal(t, "w8", SelectBest(0, w1, w4, w8).name)
}

func TestSelectBestTags(t *testing.T) {
	tags := hwy.FixedTags[float32]()
	got := SelectBest(9, tags[0], tags[1:]...)
	assert.Equal(t, 8, got.Lanes())
	assert.Equal(t, "256bit", got.Name())

	// Zero values of native vector types are candidates too.
	v := SelectBest[Candidate](20, wide.Vec16[int32]{}, wide.Vec8[int32]{}, wide.Vec4[int32]{})
	assert.Equal(t, 16, v.Lanes())
}

func TestDecompose(t *testing.T) {
	tests := []struct {
		n    int
		want string
		pad  int
	}{
		{0, "", 0},
		{-3, "", 0},
		{1, "w1", 0},
		{5, "w4+w1", 0},
		{8, "w8", 0},
		{13, "w8+w4+w1", 0},
		{23, "w8+w8+w4+w1+w1+w1", 0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.n), func(t *testing.T) {
			plan := Decompose(tt.n, w8, w4, w1)
			var names string
			for i, c := range plan {
				if i > 0 {
					names += "+"
				}
				names += c.name
			}
			assert.Equal(t, tt.want, names)
			assert.Equal(t, max(tt.n, 0)+tt.pad, PlanLanes(plan))
		})
	}
}

func TestDecomposePadding(t *testing.T) {
	plan := Decompose(6, w8, w4)
	assert.Equal(t, []width{w4, w4}, plan)
	assert.Equal(t, 8, PlanLanes(plan))
}

func TestDecomposeBadCandidate(t *testing.T) {
	assert.Panics(t, func() { Decompose(3, width{0, "zero"}) })
}

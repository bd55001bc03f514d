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

// Candidate is anything with a fixed lane count: a native vector type's zero
// value, an hwy.Tag, or a plain width.
type Candidate interface {
	Lanes() int
}

// SelectBest returns the candidate whose native width best covers a logical
// length of n lanes.
//
// The rest of the list is resolved first; then, if n is smaller than first's
// width, the result from the rest wins, otherwise first does. The net effect
// is the first candidate in list order whose width is <= n, falling back to
// the last-listed candidate when none fits. Callers list candidates from
// widest to narrowest:
//
//	SelectBest(5, w8, w4, w1)  // w4
//	SelectBest(8, w8, w4, w1)  // w8
//	SelectBest(0, w8, w4, w1)  // w1
//
// Between candidates of equal width the earlier one wins. A candidate list
// cannot be empty: first is a separate parameter.
func SelectBest[C Candidate](n int, first C, rest ...C) C {
	if len(rest) == 0 {
		return first
	}
	best := SelectBest(n, rest[0], rest[1:]...)
	if n < first.Lanes() {
		return best
	}
	return first
}

// Decompose splits a logical length of n lanes into a chain of native
// widths by repeated selection: one segment of the best width W for n, then
// the plan for n-W, until nothing is left. When no candidate fits the
// remainder, the fallback candidate ends the plan and its extra lanes are
// padding. n <= 0 yields an empty plan.
//
// Decompose panics if a selected candidate reports a non-positive width.
func Decompose[C Candidate](n int, first C, rest ...C) []C {
	var plan []C
	for n > 0 {
		c := SelectBest(n, first, rest...)
		w := c.Lanes()
		if w <= 0 {
			panic("simdarray: candidate with non-positive lane count")
		}
		plan = append(plan, c)
		n -= w
	}
	return plan
}

// PlanLanes returns the total lanes covered by plan, padding included.
func PlanLanes[C Candidate](plan []C) int {
	total := 0
	for _, c := range plan {
		total += c.Lanes()
	}
	return total
}

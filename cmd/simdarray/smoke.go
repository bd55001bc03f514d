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


package main

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/ajroetker/go-simdarray/hwy"
	"github.com/ajroetker/go-simdarray/hwy/simdarray"
	"github.com/ajroetker/go-simdarray/hwy/wide"
	"github.com/spf13/cobra"
)

func newSmokeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "smoke",
		Short: "Construct fixed-size and native-width vectors and masks and check them",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			checks := []struct {
				name string
				run  func() error
			}{
				{"fixed 4x16", smokeChain[wide.Vec16[float32], [4]wide.Vec16[float32], wide.Mask16[float32], [4]wide.Mask16[float32]]},
				{"fixed 64x1", smokeChain[wide.Vec1[float32], [64]wide.Vec1[float32], wide.Mask1[float32], [64]wide.Mask1[float32]]},
				{"native", smokeNative},
			}
			for _, c := range checks {
				if err := c.run(); err != nil {
					return fmt.Errorf("smoke %s: %w", c.name, err)
				}
				fmt.Fprintf(out, "ok  %s\n", c.name)
			}
			return nil
		},
	}
}

// smokeNative runs the chain checks on a single segment of the widest
// native vector the running CPU supports.
func smokeNative() error {
	lanes := hwy.ScalableTag[float32]{}.Lanes()
	best := simdarray.SelectBest(lanes, width(16), width(8), width(4))
	slog.Debug("native smoke width", "level", hwy.CurrentName(), "lanes", int(best))
	switch best {
	case 16:
		return smokeChain[wide.Vec16[float32], [1]wide.Vec16[float32], wide.Mask16[float32], [1]wide.Mask16[float32]]()
	case 8:
		return smokeChain[wide.Vec8[float32], [1]wide.Vec8[float32], wide.Mask8[float32], [1]wide.Mask8[float32]]()
	default:
		return smokeChain[wide.Vec4[float32], [1]wide.Vec4[float32], wide.Mask4[float32], [1]wide.Mask4[float32]]()
	}
}

// smokeChain checks a float32 chain through zero value, broadcast, load and
// store, index ramp and comparison into a mask chain.
func smokeChain[
	V interface {
		simdarray.Native[V, float32]
		Less(rhs V) M
	},
	S simdarray.Segments[V],
	M simdarray.NativeMask[M],
	MS simdarray.Segments[M],
]() error {
	var v simdarray.Vector[V, float32, S]
	var m simdarray.Mask[M, MS]
	n := v.Lanes()
	buf := make([]float32, n)

	v.Store(buf, hwy.Unaligned)
	if i := slices.IndexFunc(buf, func(x float32) bool { return x != 0 }); i >= 0 {
		return fmt.Errorf("zero vector lane %d = %v", i, buf[i])
	}
	if !m.IsEmpty() || m.IsFull() {
		return fmt.Errorf("zero mask is not empty")
	}

	v.Broadcast(1.5)
	v.Store(buf, hwy.Unaligned)
	if i := slices.IndexFunc(buf, func(x float32) bool { return x != 1.5 }); i >= 0 {
		return fmt.Errorf("broadcast lane %d = %v", i, buf[i])
	}

	src := make([]float32, n)
	for i := range src {
		src[i] = float32(2*i) - 7
	}
	v.Load(src, hwy.Unaligned)
	v.Store(buf, hwy.Unaligned)
	if !slices.Equal(src, buf) {
		return fmt.Errorf("load/store round trip: got %v, want %v", buf, src)
	}

	v.Iota(3)
	v.Store(buf, hwy.Unaligned)
	for i, x := range buf {
		if x != float32(3+i) {
			return fmt.Errorf("iota(3) lane %d = %v", i, x)
		}
	}

	ramp := simdarray.IndexRamp[V, float32, S](0)
	half := simdarray.Broadcast[V, float32, S](float32(n / 2))
	simdarray.Assign(&m, ramp, half, func(a, b V) M { return a.Less(b) })
	if got := m.CountTrue(); got != n/2 {
		return fmt.Errorf("ramp < %d: %d lanes set, want %d", n/2, got, n/2)
	}
	m.Splat(true)
	if !m.IsFull() {
		return fmt.Errorf("splat(true) mask is not full")
	}
	return nil
}

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
	"github.com/ajroetker/go-simdarray/hwy"
	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"
)

// applyAccelerated runs float add/sub/mul/div through vek's SIMD kernels.
// The kernels are IEEE-exact for these operations, so results match
// hwy.ApplyScalar bit for bit. It reports false when op or T has no kernel.
func applyAccelerated[T hwy.Lanes](op hwy.Op, dst, src []T) bool {
	switch d := any(dst).(type) {
	case []float32:
		s := any(src).([]float32)
		switch op {
		case hwy.OpAdd:
			vek32.Add_Inplace(d, s)
		case hwy.OpSub:
			vek32.Sub_Inplace(d, s)
		case hwy.OpMul:
			vek32.Mul_Inplace(d, s)
		case hwy.OpDiv:
			vek32.Div_Inplace(d, s)
		default:
			return false
		}
		return true
	case []float64:
		s := any(src).([]float64)
		switch op {
		case hwy.OpAdd:
			vek.Add_Inplace(d, s)
		case hwy.OpSub:
			vek.Sub_Inplace(d, s)
		case hwy.OpMul:
			vek.Mul_Inplace(d, s)
		case hwy.OpDiv:
			vek.Div_Inplace(d, s)
		default:
			return false
		}
		return true
	}
	return false
}

// BackendInfo describes the kernels behind the float fast path.
type BackendInfo struct {
	Architecture string
	Features     []string
	Accelerated  bool
}

// Backend reports which CPU features vek detected and whether its
// accelerated kernels are in use.
func Backend() BackendInfo {
	info := vek32.Info()
	return BackendInfo{
		Architecture: info.CPUArchitecture,
		Features:     info.CPUFeatures,
		Accelerated:  info.Acceleration,
	}
}

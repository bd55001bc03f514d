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
	"strings"

	"github.com/ajroetker/go-simdarray/hwy"
	"github.com/ajroetker/go-simdarray/hwy/wide"
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the detected SIMD level and native lane counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "SIMD level:  %s\n", hwy.CurrentName())
			fmt.Fprintf(out, "Width:       %d bytes\n", hwy.CurrentWidth())
			fmt.Fprintf(out, "HWY_NO_SIMD: %t\n", hwy.NoSimdEnv())
			fmt.Fprintf(out, "Debug build: %t\n", hwy.DebugChecks)

			fmt.Fprintln(out, "\nNative lanes:")
			printLanes[float32](cmd, "float32")
			printLanes[float64](cmd, "float64")
			printLanes[int32](cmd, "int32")
			printLanes[int16](cmd, "int16")
			printLanes[uint8](cmd, "uint8")

			b := wide.Backend()
			fmt.Fprintf(out, "\nvek backend: arch=%s accelerated=%t features=%s\n",
				b.Architecture, b.Accelerated, strings.Join(b.Features, ","))
			return nil
		},
	}
}

func printLanes[T hwy.Lanes](cmd *cobra.Command, name string) {
	var lanes []string
	for _, tag := range hwy.FixedTags[T]() {
		lanes = append(lanes, fmt.Sprintf("%s=%d", tag.Name(), tag.Lanes()))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  %-8s native=%-3d %s\n", name, hwy.ScalableTag[T]{}.Lanes(), strings.Join(lanes, " "))
}

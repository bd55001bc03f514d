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

	"github.com/ajroetker/go-simdarray/hwy/simdarray"
	"github.com/spf13/cobra"
)

const defaultCandidates = "16,8,4,1"

func newSelectCmd() *cobra.Command {
	var (
		n          int
		candidates string
	)
	cmd := &cobra.Command{
		Use:   "select",
		Short: "Pick the best native width for a logical length",
		Long: `select applies the native width selector: the first candidate (in the
order given) whose lane count does not exceed -n, or the last candidate if
none does. List candidates from widest to narrowest.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			widths, err := parseWidths(candidates)
			if err != nil {
				return fmt.Errorf("parsing --candidates: %w", err)
			}
			best := simdarray.SelectBest(n, widths[0], widths[1:]...)
			slog.Debug("selected native width", "n", n, "candidates", candidates, "width", int(best))
			fmt.Fprintln(cmd.OutOrStdout(), best)
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "size", "n", getEnvInt("SIMDARRAY_N", 8), "Logical vector length in lanes")
	cmd.Flags().StringVar(&candidates, "candidates", getEnvStr("SIMDARRAY_CANDIDATES", defaultCandidates), "Comma-separated candidate lane counts, widest first")
	return cmd
}

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

// Command simdarray inspects how logical vector lengths map onto native SIMD
// segments on the running machine.
//
// Usage:
//
//	simdarray info                                # dispatch level, widths, vek backend
//	simdarray select -n 5 --candidates 8,4,1      # best native width for 5 lanes (--size)
//	simdarray plan -n 37 --candidates 16,8,4,1    # split 37 lanes into native widths
//	simdarray plan --config plan.yaml             # several plans from a file
//	simdarray smoke                               # construct fixed and native vectors and check them
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "simdarray",
		Short: "Inspect fixed-size SIMD vector layouts",
		Long: `simdarray reports how logical vector lengths are decomposed into
chains of native SIMD segments, and smoke-tests the composite vectors.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := parseLevel(getEnvStr("SIMDARRAY_LOG_LEVEL", "warn"))
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", getEnvBool("SIMDARRAY_VERBOSE", false), "Enable debug logging")

	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newSelectCmd())
	rootCmd.AddCommand(newPlanCmd())
	rootCmd.AddCommand(newSmokeCmd())
	return rootCmd
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelWarn
	}
	return level
}

func getEnvStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// formatWidths joins widths as "16+16+4".
func formatWidths(ws []width) string {
	return strings.Join(lo.Map(ws, func(w width, _ int) string { return w.String() }), "+")
}

// width is a selector candidate given as a bare lane count.
type width int

func (w width) Lanes() int { return int(w) }

func (w width) String() string { return strconv.Itoa(int(w)) }

// parseWidths parses a comma-separated list of positive lane counts.
func parseWidths(s string) ([]width, error) {
	parts := lo.Compact(lo.Map(strings.Split(s, ","), func(p string, _ int) string {
		return strings.TrimSpace(p)
	}))
	var widths []width
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("candidate %q: %w", part, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("candidate %d: lane count must be positive", n)
		}
		widths = append(widths, width(n))
	}
	if len(widths) == 0 {
		return nil, fmt.Errorf("no candidates in %q", s)
	}
	return widths, nil
}

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
	"io"
	"log/slog"
	"os"

	"github.com/ajroetker/go-simdarray/hwy/simdarray"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// planConfig is the YAML form of a batch of plans:
//
//	candidates: [16, 8, 4, 1]
//	sizes: [5, 24, 37]
type planConfig struct {
	Candidates []int `yaml:"candidates"`
	Sizes      []int `yaml:"sizes"`
}

func loadPlanConfig(path string) (*planConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan config: %w", err)
	}
	return parsePlanConfig(data)
}

func parsePlanConfig(data []byte) (*planConfig, error) {
	var cfg planConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing plan config: %w", err)
	}
	if len(cfg.Sizes) == 0 {
		return nil, fmt.Errorf("plan config lists no sizes")
	}
	if bad, ok := lo.Find(cfg.Candidates, func(c int) bool { return c <= 0 }); ok {
		return nil, fmt.Errorf("plan config candidate %d: lane count must be positive", bad)
	}
	return &cfg, nil
}

func newPlanCmd() *cobra.Command {
	var (
		n          int
		candidates string
		configPath string
	)
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Split a logical length into a chain of native widths",
		RunE: func(cmd *cobra.Command, args []string) error {
			widths, err := parseWidths(candidates)
			if err != nil {
				return fmt.Errorf("parsing --candidates: %w", err)
			}
			sizes := []int{n}
			if configPath != "" {
				cfg, err := loadPlanConfig(configPath)
				if err != nil {
					return err
				}
				if len(cfg.Candidates) > 0 {
					widths = lo.Map(cfg.Candidates, func(c int, _ int) width { return width(c) })
				}
				sizes = cfg.Sizes
				slog.Debug("loaded plan config", "path", configPath, "sizes", len(sizes))
			}
			for _, size := range sizes {
				printPlan(cmd.OutOrStdout(), size, widths)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "size", "n", getEnvInt("SIMDARRAY_N", 8), "Logical vector length in lanes")
	cmd.Flags().StringVar(&candidates, "candidates", getEnvStr("SIMDARRAY_CANDIDATES", defaultCandidates), "Comma-separated candidate lane counts, widest first")
	cmd.Flags().StringVar(&configPath, "config", getEnvStr("SIMDARRAY_PLAN", ""), "YAML file with candidates and sizes")
	return cmd
}

func printPlan(w io.Writer, n int, widths []width) {
	plan := simdarray.Decompose(n, widths[0], widths[1:]...)
	total := simdarray.PlanLanes(plan)
	desc := formatWidths(plan)
	if desc == "" {
		desc = "-"
	}
	fmt.Fprintf(w, "n=%d plan=%s segments=%d lanes=%d padding=%d\n",
		n, desc, len(plan), total, max(total-max(n, 0), 0))
}

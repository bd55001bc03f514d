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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func TestParseWidths(t *testing.T) {
	ws, err := parseWidths(" 8, 4 ,,1 ")
	require.NoError(t, err)
	assert.Equal(t, []width{8, 4, 1}, ws)

	_, err = parseWidths("8,x")
	assert.Error(t, err)
	_, err = parseWidths("8,0")
	assert.Error(t, err)
	_, err = parseWidths(" , ")
	assert.Error(t, err)
}

func TestFormatWidths(t *testing.T) {
	assert.Equal(t, "16+16+4", formatWidths([]width{16, 16, 4}))
	assert.Equal(t, "", formatWidths(nil))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", parseLevel("debug").String())
	assert.Equal(t, "WARN", parseLevel("nonsense").String())
}

func TestSelectCommand(t *testing.T) {
	tests := []struct {
		n    string
		want string
	}{
		{"5", "4"},
		{"8", "8"},
		{"0", "1"},
		{"100", "8"},
	}
	for _, tt := range tests {
		out, err := runCmd(t, "select", "-n", tt.n, "--candidates", "8,4,1")
		require.NoError(t, err)
		assert.Equal(t, tt.want, strings.TrimSpace(out), "n=%s", tt.n)
	}
}

func TestSelectCommandBadCandidates(t *testing.T) {
	_, err := runCmd(t, "select", "--candidates", "8,-1")
	assert.Error(t, err)
}

func TestPlanCommand(t *testing.T) {
	out, err := runCmd(t, "plan", "-n", "37", "--candidates", "16,8,4,1")
	require.NoError(t, err)
	assert.Equal(t, "n=37 plan=16+16+4+1 segments=4 lanes=37 padding=0\n", out)

	out, err = runCmd(t, "plan", "-n", "6", "--candidates", "8,4")
	require.NoError(t, err)
	assert.Equal(t, "n=6 plan=4+4 segments=2 lanes=8 padding=2\n", out)

	out, err = runCmd(t, "plan", "-n", "0")
	require.NoError(t, err)
	assert.Equal(t, "n=0 plan=- segments=0 lanes=0 padding=0\n", out)
}

func TestParsePlanConfig(t *testing.T) {
	cfg, err := parsePlanConfig([]byte("candidates: [8, 4, 1]\nsizes: [5, 12]\n"))
	require.NoError(t, err)
	assert.Equal(t, []int{8, 4, 1}, cfg.Candidates)
	assert.Equal(t, []int{5, 12}, cfg.Sizes)

	_, err = parsePlanConfig([]byte("candidates: [8]\n"))
	assert.Error(t, err)
	_, err = parsePlanConfig([]byte("candidates: [8, 0]\nsizes: [1]\n"))
	assert.Error(t, err)
	_, err = parsePlanConfig([]byte("sizes: [1\n"))
	assert.Error(t, err)
}

func TestPlanCommandConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("candidates: [8, 4, 1]\nsizes: [5, 12]\n"), 0o644))

	out, err := runCmd(t, "plan", "--config", path)
	require.NoError(t, err)
	assert.Equal(t,
		"n=5 plan=4+1 segments=2 lanes=5 padding=0\n"+
			"n=12 plan=8+4 segments=2 lanes=12 padding=0\n", out)

	_, err = runCmd(t, "plan", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestInfoCommand(t *testing.T) {
	out, err := runCmd(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "SIMD level:")
	assert.Contains(t, out, "float32")
	assert.Contains(t, out, "vek backend:")
}

func TestSmokeCommand(t *testing.T) {
	out, err := runCmd(t, "smoke")
	require.NoError(t, err)
	assert.Equal(t, "ok  fixed 4x16\nok  fixed 64x1\nok  native\n", out)
}

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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-highway-reduce/hwy/contrib/reduce"
	"github.com/ajroetker/go-highway-reduce/internal/bench"
)

func runCmd(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestArgumentErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"no arguments", nil, exitUsage},
		{"too few", []string{"10", "5"}, exitUsage},
		{"too many", []string{"10", "5", "1", "2"}, exitUsage},
		{"non-numeric count", []string{"abc", "5", "1"}, exitNumFloats},
		{"zero count", []string{"0", "5", "1"}, exitNumFloats},
		{"count out of range", []string{"99999999999", "5", "1"}, exitNumFloats},
		{"non-numeric reps", []string{"10", "five", "1"}, exitReps},
		{"zero reps", []string{"10", "0", "1"}, exitReps},
		{"non-numeric seed", []string{"10", "5", "x1"}, exitSeed},
		{"unknown kernel", []string{"--kernels", "gpu-sum", "10", "5", "1"}, exitFlags},
		{"bad log level", []string{"--log-level", "loud", "10", "5", "1"}, exitFlags},
		{"inverted range", []string{"--min", "1", "--max", "0", "10", "5", "1"}, exitFlags},
		{"unknown flag", []string{"--bogus", "10", "5", "1"}, exitFlags},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runCmd(tt.args...)
			assert.Equal(t, tt.code, code)
			assert.Empty(t, stdout, "no benchmarking output on a configuration error")
			assert.Contains(t, stderr, "Error:")
		})
	}
}

func TestUsageOnWrongArgumentCount(t *testing.T) {
	_, _, stderr := runCmd("1")
	assert.Contains(t, stderr, "Usage: reducebench [NumFloats] [NumRepetitions] [Seed]")
}

func TestRunAllKernels(t *testing.T) {
	code, stdout, _ := runCmd("37", "3", "7")
	assert.Equal(t, exitOK, code)

	assert.True(t, strings.HasPrefix(stdout, "Generated 37 floats using seed 7, including:\n"))
	for _, name := range []string{"Scalar Sum", "SSE Sum", "AVX Sum", "AVX Mean", "Scalar MinMax", "AVX MinMax"} {
		assert.Contains(t, stdout, "Running "+name+" 3 times\n")
	}
	assert.Equal(t, 6, strings.Count(stdout, "Min:\t"))
	assert.Equal(t, 6, strings.Count(stdout, "Mean:\t"))
	assert.Equal(t, 6, strings.Count(stdout, "Max:\t"))
	assert.NotContains(t, stdout, "Error while running tests")

	// Sample values are printed once, before the first kernel.
	header := stdout[:strings.Index(stdout, "Running")]
	assert.Equal(t, 1+10+1, strings.Count(header, "\n"))
}

func TestRunSelectedKernels(t *testing.T) {
	code, stdout, _ := runCmd("--kernels", "avx-sum,scalar-sum", "--min", "0", "--max", "2", "16", "2", "1")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "Running Scalar Sum 2 times")
	assert.Contains(t, stdout, "Running AVX Sum 2 times")
	assert.NotContains(t, stdout, "SSE Sum")
	assert.Less(t, strings.Index(stdout, "Scalar Sum"), strings.Index(stdout, "AVX Sum"))
}

func TestRunNegativeSeed(t *testing.T) {
	code, stdout, _ := runCmd("--kernels", "scalar-sum", "12", "2", "-5")
	assert.Equal(t, exitOK, code)
	assert.True(t, strings.HasPrefix(stdout, "Generated 12 floats using seed -5, including:\n"))
}

func TestRunDebugLogging(t *testing.T) {
	code, _, stderr := runCmd("--log-level", "debug", "8", "1", "3")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stderr, "cpu dispatch")
	assert.Contains(t, stderr, "benchmark finished")
}

func TestRunContinuesAfterValidationFailure(t *testing.T) {
	registry := func(data []float32) *bench.Registry {
		calls := float32(0)
		return bench.NewRegistry(
			bench.NewKernel("Drifting Sum", func() float32 {
				calls++
				return reduce.Sum(data) + calls
			}),
			bench.NewKernel("Scalar Sum", func() float32 { return reduce.Sum(data) }),
		)
	}

	var out, errOut bytes.Buffer
	code := runWith([]string{"16", "3", "1"}, &out, &errOut, registry)
	assert.Equal(t, exitOK, code, "a validation failure does not change the exit code")

	stdout := out.String()
	failure := strings.Index(stdout, "Error while running tests:\nExpected:\t")
	require.GreaterOrEqual(t, failure, 0)
	next := strings.Index(stdout, "Running Scalar Sum 3 times\n")
	require.Greater(t, next, failure, "the next kernel runs after the failure")

	assert.Equal(t, 1, strings.Count(stdout, "Error while running tests"))
	assert.Equal(t, 1, strings.Count(stdout, "Min:\t"), "only the stable kernel reports statistics")
	assert.Contains(t, stdout[next:], "Mean:\t")
	assert.Contains(t, errOut.String(), "kernels failed validation")
}

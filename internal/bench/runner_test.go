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

package bench

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCollectsOneSamplePerRepetition(t *testing.T) {
	calls := 0
	samples, err := Run(func() float32 {
		calls++
		return 1.5
	}, 7)

	require.NoError(t, err)
	assert.Len(t, samples, 7)
	assert.Equal(t, 8, calls, "warm-up plus one call per repetition")
	for _, d := range samples {
		assert.GreaterOrEqual(t, d, time.Duration(0))
	}
}

func TestRunZeroRepetitions(t *testing.T) {
	calls := 0
	samples, err := Run(func() int { calls++; return 0 }, 0)

	require.NoError(t, err)
	assert.NotNil(t, samples)
	assert.Empty(t, samples)
	assert.Equal(t, 1, calls, "only the warm-up runs")
}

func TestRunDetectsDivergence(t *testing.T) {
	results := []float32{10, 10, 10, 11, 10}
	call := 0
	samples, err := Run(func() float32 {
		r := results[call]
		call++
		return r
	}, 4)

	assert.Nil(t, samples, "no partial timing sequence on failure")

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, 2, verr.Repetition)
	assert.Equal(t, float32(10), verr.Expected)
	assert.Equal(t, float32(11), verr.Actual)
	assert.Equal(t, 4, call, "remaining repetitions are skipped")
}

func TestRunComparesStructResults(t *testing.T) {
	type pair struct{ Lo, Hi float32 }
	flip := false
	_, err := Run(func() pair {
		flip = !flip
		if flip {
			return pair{-1, 1}
		}
		return pair{-1, 2}
	}, 3)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, pair{-1, 1}, verr.Expected)
	assert.Equal(t, pair{-1, 2}, verr.Actual)
	assert.Contains(t, verr.Error(), "repetition 0")
}

func TestRunnerBenchmark(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	runner := NewRunner(5, logger)
	assert.Equal(t, 5, runner.Reps())

	stats, err := runner.Benchmark(NewKernel("Const", func() float32 { return 3 }))
	require.NoError(t, err)
	assert.LessOrEqual(t, stats.Min, stats.Mean)
	assert.LessOrEqual(t, stats.Mean, stats.Max)
	assert.Contains(t, logs.String(), "kernel=Const")
	assert.Contains(t, logs.String(), "benchmark finished")
}

func TestRunnerBenchmarkValidationFailure(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	n := float32(0)
	stats, err := NewRunner(3, logger).Benchmark(NewKernel("Drifting", func() float32 {
		n++
		return n
	}))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Drifting", verr.Kernel)
	assert.Equal(t, 0, verr.Repetition)
	assert.Equal(t, Stats{}, stats)
	assert.Contains(t, verr.Error(), "Drifting")
	assert.Contains(t, logs.String(), "diverged")
}

func TestRunnerBenchmarkNoRepetitions(t *testing.T) {
	_, err := NewRunner(0, nil).Benchmark(NewKernel("Const", func() int { return 1 }))
	assert.Error(t, err)
}

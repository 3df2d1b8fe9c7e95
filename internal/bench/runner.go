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
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ValidationError reports a timed call whose result differed from the
// warm-up baseline.
type ValidationError struct {
	Kernel     string
	Repetition int
	Expected   any
	Actual     any
}

func (e *ValidationError) Error() string {
	name := e.Kernel
	if name == "" {
		name = "kernel"
	}
	return fmt.Sprintf("%s: repetition %d returned %v, baseline was %v", name, e.Repetition, e.Actual, e.Expected)
}

// Run calls op once untimed to capture a baseline, then reps more times,
// timing each call with the monotonic clock. It returns one duration per
// repetition in call order.
//
// The first result that is not == to the baseline stops the run; Run then
// returns a *ValidationError and no samples. For reps <= 0 only the warm-up
// call is made and the sample slice is empty.
func Run[R comparable](op func() R, reps int) ([]time.Duration, error) {
	expected := op()

	samples := make([]time.Duration, 0, max(reps, 0))
	for i := 0; i < reps; i++ {
		start := time.Now()
		result := op()
		elapsed := time.Since(start)

		if result != expected {
			return nil, &ValidationError{
				Repetition: i,
				Expected:   expected,
				Actual:     result,
			}
		}
		samples = append(samples, elapsed)
	}
	return samples, nil
}

// Runner benchmarks kernels one after another with a fixed repetition count.
type Runner struct {
	reps   int
	logger *slog.Logger
}

// NewRunner returns a Runner that times reps calls per kernel. A nil logger
// discards log output.
func NewRunner(reps int, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{reps: reps, logger: logger}
}

// Reps returns the number of timed calls per kernel.
func (r *Runner) Reps() int {
	return r.reps
}

// Benchmark runs k and summarizes its samples. On a validation failure the
// returned error is a *ValidationError carrying the kernel name and no
// statistics are produced.
func (r *Runner) Benchmark(k Kernel) (Stats, error) {
	log := r.logger.With("kernel", k.Name, "reps", r.reps)
	log.Debug("benchmark starting")

	samples, err := k.run(r.reps)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			verr.Kernel = k.Name
			log.Error("kernel result diverged from baseline",
				"repetition", verr.Repetition,
				"expected", verr.Expected,
				"actual", verr.Actual)
		}
		return Stats{}, err
	}
	if len(samples) == 0 {
		return Stats{}, fmt.Errorf("%s: no timing samples, reps = %d", k.Name, r.reps)
	}

	stats := Summarize(samples)
	log.Debug("benchmark finished", "min", stats.Min, "mean", stats.Mean, "max", stats.Max)
	return stats, nil
}

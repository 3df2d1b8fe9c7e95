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
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-highway-reduce/hwy"
	"github.com/ajroetker/go-highway-reduce/internal/bench"
	"github.com/ajroetker/go-highway-reduce/internal/datagen"
	"github.com/ajroetker/go-highway-reduce/internal/report"
)

const (
	exitOK        = 0
	exitUsage     = 1
	exitNumFloats = 2
	exitReps      = 3
	exitSeed      = 4
	exitFlags     = 5
)

// exitError carries the process exit code for a configuration error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

type options struct {
	numFloats int
	reps      int
	seed      int32
	lo, hi    float32
	kernels   []string
	logLevel  string
}

// registryFunc builds the kernels to benchmark over the generated buffer.
type registryFunc func(data []float32) *bench.Registry

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runWith(args, stdout, stderr, bench.DefaultRegistry)
}

func runWith(args []string, stdout, stderr io.Writer, registry registryFunc) int {
	cmd := newRootCmd(stdout, stderr, registry)
	// cobra falls back to os.Args when given nil.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return exitOK
	}

	var ee *exitError
	if !errors.As(err, &ee) {
		// cobra flag parsing errors
		ee = &exitError{code: exitFlags, err: err}
	}
	if ee.code == exitUsage {
		fmt.Fprintf(stderr, "Usage: %s [NumFloats] [NumRepetitions] [Seed]\n", cmd.Name())
	}
	fmt.Fprintf(stderr, "Error: %v\n", ee.err)
	return ee.code
}

func newRootCmd(stdout, stderr io.Writer, registry registryFunc) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "reducebench [flags] NumFloats NumRepetitions Seed",
		Short: "Benchmark scalar, 128-bit and 256-bit float reductions",
		Long: `reducebench generates NumFloats uniform floats from Seed, then times each
reduction kernel NumRepetitions times and prints min, mean and max seconds.
Every timed call must return exactly the result of an untimed warm-up call.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 3 {
				return &exitError{code: exitUsage, err: fmt.Errorf("expected 3 arguments, got %d", len(args))}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.parseArgs(args); err != nil {
				return err
			}
			return runBenchmarks(opts, registry, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	// Flags go before the positional arguments so that a negative Seed is
	// not read as a shorthand flag.
	f.SetInterspersed(false)
	f.Float32Var(&opts.lo, "min", -1, "lower bound of generated values")
	f.Float32Var(&opts.hi, "max", 1, "upper bound of generated values")
	f.StringSliceVar(&opts.kernels, "kernels", nil, "comma-separated kernels to run, e.g. scalar-sum,avx-sum (default all)")
	f.StringVar(&opts.logLevel, "log-level", "warn", "log level on stderr: debug, info, warn or error")

	return cmd
}

func (o *options) parseArgs(args []string) error {
	n, err := parsePositive(args[0])
	if err != nil {
		return &exitError{code: exitNumFloats, err: err}
	}
	reps, err := parsePositive(args[1])
	if err != nil {
		return &exitError{code: exitReps, err: err}
	}
	seed, err := strconv.ParseInt(args[2], 10, 32)
	if err != nil {
		return &exitError{code: exitSeed, err: fmt.Errorf("could not parse %q as an integer", args[2])}
	}

	o.numFloats, o.reps, o.seed = int(n), int(reps), int32(seed)
	return nil
}

func parsePositive(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("could not parse %q as an integer", s)
	}
	if v < 1 {
		return 0, fmt.Errorf("%q must be at least 1", s)
	}
	return v, nil
}

func runBenchmarks(opts *options, registry registryFunc, stdout, stderr io.Writer) error {
	level, err := report.ParseLevel(opts.logLevel)
	if err != nil {
		return &exitError{code: exitFlags, err: fmt.Errorf("invalid --log-level: %w", err)}
	}
	if opts.hi < opts.lo {
		return &exitError{code: exitFlags, err: fmt.Errorf("--max %v is below --min %v", opts.hi, opts.lo)}
	}
	logger := report.NewLogger(stderr, level)
	logger.Info("cpu dispatch",
		"level", hwy.CurrentName(),
		"native128", hwy.NativeWidth(hwy.Width128),
		"native256", hwy.NativeWidth(hwy.Width256))

	gen := datagen.New(uint32(opts.seed))
	data := gen.Generate(opts.numFloats, opts.lo, opts.hi)

	kernels, err := registry(data).Select(opts.kernels)
	if err != nil {
		return &exitError{code: exitFlags, err: err}
	}

	printer := report.NewPrinter(stdout)
	printer.Generated(data, int32(gen.Seed()))

	runner := bench.NewRunner(opts.reps, logger)
	failed := 0
	for _, k := range kernels {
		printer.Running(k.Name, runner.Reps())

		stats, err := runner.Benchmark(k)
		var verr *bench.ValidationError
		switch {
		case errors.As(err, &verr):
			printer.ValidationFailure(verr)
			failed++
		case err != nil:
			return err
		default:
			printer.Stats(stats)
		}
	}
	if failed > 0 {
		logger.Warn("kernels failed validation", "failed", failed, "total", len(kernels))
	}
	return nil
}

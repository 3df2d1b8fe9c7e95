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

// Package report writes the human-readable benchmark report.
package report

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ajroetker/go-highway-reduce/internal/bench"
)

// MaxSampleValues is how many generated input values the report shows.
const MaxSampleValues = 10

// Printer writes report sections to an io.Writer. Counts are printed with
// English digit grouping.
type Printer struct {
	w io.Writer
	p *message.Printer
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, p: message.NewPrinter(language.English)}
}

// Generated prints the run header and up to MaxSampleValues of data. It is
// printed once per run, before any kernel.
func (p *Printer) Generated(data []float32, seed int32) {
	p.p.Fprintf(p.w, "Generated %d floats using seed %d, including:\n", len(data), seed)
	for _, v := range data[:min(len(data), MaxSampleValues)] {
		fmt.Fprintf(p.w, "%f\n", v)
	}
	fmt.Fprintln(p.w)
}

// Running prints the header of one kernel benchmark.
func (p *Printer) Running(name string, reps int) {
	p.p.Fprintf(p.w, "Running %s %d times\n", name, reps)
}

// Stats prints the timing summary of one kernel.
func (p *Printer) Stats(s bench.Stats) {
	fmt.Fprintf(p.w, "Min:\t%f s\n", s.Min)
	fmt.Fprintf(p.w, "Mean:\t%f s\n", s.Mean)
	fmt.Fprintf(p.w, "Max:\t%f s\n", s.Max)
	fmt.Fprintln(p.w)
}

// ValidationFailure prints the expected and actual results of a kernel that
// failed its baseline check.
func (p *Printer) ValidationFailure(err *bench.ValidationError) {
	fmt.Fprintf(p.w, "Error while running tests:\nExpected:\t%s\nActual:\t%s\n",
		formatValue(err.Expected), formatValue(err.Actual))
	fmt.Fprintln(p.w)
}

func formatValue(v any) string {
	switch x := v.(type) {
	case float32, float64:
		return fmt.Sprintf("%f", x)
	default:
		return fmt.Sprintf("%+v", x)
	}
}

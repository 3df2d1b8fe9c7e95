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
	"time"

	"github.com/ajroetker/go-highway-reduce/hwy"
	"github.com/ajroetker/go-highway-reduce/hwy/contrib/reduce"
	"github.com/ajroetker/go-highway-reduce/internal/mem"
)

// Stats summarizes a timing sample sequence, in seconds.
type Stats struct {
	Min  float64
	Mean float64
	Max  float64
}

// Summarize computes the minimum, mean and maximum of samples. The extrema
// come from the paired scan of reduce.ComputeMinMax and the mean from the
// 128-bit lane-parallel reduce.Mean, so the harness runs on the same kernels
// it measures.
//
// Panics if samples is empty.
func Summarize(samples []time.Duration) Stats {
	if len(samples) == 0 {
		panic("bench: Summarize called on empty sample sequence")
	}

	seconds := mem.AllocAlignedFloat64(len(samples))
	for i, d := range samples {
		seconds[i] = d.Seconds()
	}

	mm := reduce.ComputeMinMax(seconds)
	return Stats{
		Min:  mm.Min,
		Mean: reduce.Mean(seconds, hwy.Width128),
		Max:  mm.Max,
	}
}

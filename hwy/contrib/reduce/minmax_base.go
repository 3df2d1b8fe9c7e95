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

package reduce

import "github.com/ajroetker/go-highway-reduce/hwy"

// MinMax holds the extrema observed in a slice.
type MinMax[T hwy.Floats] struct {
	Min T
	Max T
}

// ComputeMinMax returns the minimum and maximum of data with a paired scan.
//
// Min and Max start at data[0]. The remaining elements are visited in
// adjacent pairs; the smaller of each pair is compared with Min and the larger
// with Max. Both comparisons are made for every pair, so a single pair may
// lower Min and raise Max at once. An element left over after pairing is
// compared with both.
//
// NaN elements are ignored unless data[0] is NaN: a pair holding a NaN is
// split and its elements are compared one at a time, so the NaN fails both
// comparisons and its partner is still checked against Min and Max.
// Panics if the slice is empty.
func ComputeMinMax[T hwy.Floats](data []T) MinMax[T] {
	if len(data) == 0 {
		panic("reduce: ComputeMinMax called on empty slice")
	}

	ret := MinMax[T]{Min: data[0], Max: data[0]}

	i := 1
	for ; i+1 < len(data); i += 2 {
		smaller, larger := data[i], data[i+1]
		if larger < smaller {
			smaller, larger = larger, smaller
		} else if smaller != smaller || larger != larger {
			ret = ret.include(smaller).include(larger)
			continue
		}
		if smaller < ret.Min {
			ret.Min = smaller
		}
		if larger > ret.Max {
			ret.Max = larger
		}
	}

	if i < len(data) {
		ret = ret.include(data[i])
	}

	return ret
}

// include compares x with both extrema. A NaN x changes neither.
func (m MinMax[T]) include(x T) MinMax[T] {
	if x < m.Min {
		m.Min = x
	}
	if x > m.Max {
		m.Max = x
	}
	return m
}

// MinMaxN returns the extrema of data using bits-wide lane-parallel min and
// max accumulators followed by the fixed horizontal reduction tree.
// For input without NaN it returns the same value as ComputeMinMax.
//
// Panics if the slice is empty.
// PRECONDITION: data is aligned to bits/8 bytes.
func MinMaxN[T hwy.Floats](data []T, bits int) MinMax[T] {
	if len(data) == 0 {
		panic("reduce: MinMaxN called on empty slice")
	}
	return MinMax[T]{
		Min: hwy.ReduceMinTree(PartialMins(data, bits)),
		Max: hwy.ReduceMaxTree(PartialMaxs(data, bits)),
	}
}

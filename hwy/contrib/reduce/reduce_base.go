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

// Sum returns the sum of data accumulated sequentially from index 0.
// This is the scalar reference the lane-parallel kernels are checked against.
//
// Returns 0 if the slice is empty.
func Sum[T hwy.Floats](data []T) T {
	var sum T
	for _, v := range data {
		sum += v
	}
	return sum
}

// SumN returns the sum of data using bits-wide lane-parallel accumulation
// followed by the fixed horizontal reduction tree.
//
// Returns 0 if the slice is empty.
// PRECONDITION: data is aligned to bits/8 bytes.
func SumN[T hwy.Floats](data []T, bits int) T {
	return hwy.ReduceSumTree(PartialSums(data, bits))
}

// Sum128 sums float32 data with 4 lanes (one 128-bit SSE register).
func Sum128(data []float32) float32 {
	return SumN(data, hwy.Width128)
}

// Sum256 sums float32 data with 8 lanes (one 256-bit AVX register).
func Sum256(data []float32) float32 {
	return SumN(data, hwy.Width256)
}

// Mean returns SumN(data, bits) divided by len(data).
//
// Panics if the slice is empty.
func Mean[T hwy.Floats](data []T, bits int) T {
	if len(data) == 0 {
		panic("reduce: Mean called on empty slice")
	}
	return SumN(data, bits) / T(len(data))
}

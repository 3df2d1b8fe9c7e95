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

// PartialSums accumulates data into a vector of hwy.LanesFor[T](bits) lanes.
//
// Full groups of W contiguous elements are added lane-wise into a
// zero-initialized accumulator; each of the len(data) mod W stragglers is
// added into lane 0 only. The sum of the returned lanes is the sum of data.
//
// PRECONDITION: data is aligned to bits/8 bytes.
func PartialSums[T hwy.Floats](data []T, bits int) hwy.Vec[T] {
	lanes := hwy.LanesFor[T](bits)
	return accumulate(data, hwy.ZeroN[T](lanes), hwy.Add[T], hwy.AddLane0[T])
}

// PartialMins computes the lane-wise running minimum of data. The accumulator
// starts as data[0] broadcast to every lane so that no lane holds a value that
// is not in data.
//
// Panics if data is empty.
func PartialMins[T hwy.Floats](data []T, bits int) hwy.Vec[T] {
	if len(data) == 0 {
		panic("reduce: PartialMins called on empty slice")
	}
	lanes := hwy.LanesFor[T](bits)
	return accumulate(data, hwy.SetN(data[0], lanes), hwy.Min[T], hwy.MinLane0[T])
}

// PartialMaxs computes the lane-wise running maximum of data, seeded like
// PartialMins.
//
// Panics if data is empty.
func PartialMaxs[T hwy.Floats](data []T, bits int) hwy.Vec[T] {
	if len(data) == 0 {
		panic("reduce: PartialMaxs called on empty slice")
	}
	lanes := hwy.LanesFor[T](bits)
	return accumulate(data, hwy.SetN(data[0], lanes), hwy.Max[T], hwy.MaxLane0[T])
}

// accumulate folds data into acc: whole groups with combine, stragglers into
// lane 0 with combineLane0.
func accumulate[T hwy.Floats](
	data []T,
	acc hwy.Vec[T],
	combine func(a, b hwy.Vec[T]) hwy.Vec[T],
	combineLane0 func(v hwy.Vec[T], x T) hwy.Vec[T],
) hwy.Vec[T] {
	lanes := acc.NumLanes()
	full := len(data) - len(data)%lanes

	for i := 0; i < full; i += lanes {
		acc = combine(acc, hwy.LoadN(data[i:], lanes))
	}
	for _, straggler := range data[full:] {
		acc = combineLane0(acc, straggler)
	}
	return acc
}

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

package hwy

// This file provides pure Go implementations of the lane-wise operations the
// reduction kernels are built from. Each function mirrors one SSE/AVX
// instruction (noted per function) so that the order of floating-point
// operations matches the hardware kernels lane for lane.

// LoadN creates an n-lane vector from the first n elements of src
// (_mm_load_ps / _mm256_load_ps).
// PRECONDITION: len(src) >= n.
func LoadN[T Lanes](src []T, n int) Vec[T] {
	checkLanes(n)
	var v Vec[T]
	v.n = n
	copy(v.lanes[:n], src[:n])
	return v
}

// SetN creates an n-lane vector with all lanes set to the same value
// (_mm_set_ps1 / _mm256_set1_ps).
func SetN[T Lanes](value T, n int) Vec[T] {
	checkLanes(n)
	var v Vec[T]
	v.n = n
	for i := range n {
		v.lanes[i] = value
	}
	return v
}

// ZeroN creates an n-lane vector with all lanes set to zero.
func ZeroN[T Lanes](n int) Vec[T] {
	checkLanes(n)
	return Vec[T]{n: n}
}

// Add performs element-wise addition (_mm_add_ps).
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(a.n, b.n)
	r := Vec[T]{n: n}
	for i := range n {
		r.lanes[i] = a.lanes[i] + b.lanes[i]
	}
	return r
}

// Min returns element-wise minimum (_mm_min_ps).
// When either lane is NaN the lane from b is returned, as the hardware does.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(a.n, b.n)
	r := Vec[T]{n: n}
	for i := range n {
		if a.lanes[i] < b.lanes[i] {
			r.lanes[i] = a.lanes[i]
		} else {
			r.lanes[i] = b.lanes[i]
		}
	}
	return r
}

// Max returns element-wise maximum (_mm_max_ps).
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(a.n, b.n)
	r := Vec[T]{n: n}
	for i := range n {
		if a.lanes[i] > b.lanes[i] {
			r.lanes[i] = a.lanes[i]
		} else {
			r.lanes[i] = b.lanes[i]
		}
	}
	return r
}

// AddLane0 adds x into lane 0 only and leaves the other lanes untouched
// (_mm_add_ss).
func AddLane0[T Lanes](v Vec[T], x T) Vec[T] {
	v.lanes[0] += x
	return v
}

// MinLane0 folds x into lane 0 with min (_mm_min_ss).
func MinLane0[T Lanes](v Vec[T], x T) Vec[T] {
	if x < v.lanes[0] {
		v.lanes[0] = x
	}
	return v
}

// MaxLane0 folds x into lane 0 with max (_mm_max_ss).
func MaxLane0[T Lanes](v Vec[T], x T) Vec[T] {
	if x > v.lanes[0] {
		v.lanes[0] = x
	}
	return v
}

// LowerHalf returns the lower half of the lanes as a new vector
// (_mm256_castps256_ps128).
func LowerHalf[T Lanes](v Vec[T]) Vec[T] {
	h := v.n / 2
	checkLanes(h)
	r := Vec[T]{n: h}
	copy(r.lanes[:h], v.lanes[:h])
	return r
}

// UpperHalf returns the upper half of the lanes as a new vector
// (_mm256_extractf128_ps(v, 1)).
func UpperHalf[T Lanes](v Vec[T]) Vec[T] {
	h := v.n / 2
	checkLanes(h)
	r := Vec[T]{n: h}
	copy(r.lanes[:h], v.lanes[h:v.n])
	return r
}

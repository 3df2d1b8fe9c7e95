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

// Horizontal reductions collapse a vector into one scalar with a fixed
// pairwise tree: the lanes are split into a lower and an upper half, each
// half is reduced recursively and the two results are combined.
//
//	4 lanes: (v0+v1) + (v2+v3)
//	8 lanes: ((v0+v1) + (v2+v3)) + ((v4+v5) + (v6+v7))
//
// This is the order produced by two _mm_hadd_ps on a 128-bit register, and by
// two _mm256_hadd_ps followed by adding the extracted 128-bit halves on a
// 256-bit register. Changing the topology changes float rounding, so every
// lane width must keep using this one.

// ReduceSumTree sums all lanes using the fixed pairwise tree.
// Panics if the lane count is not a power of two.
func ReduceSumTree[T Lanes](v Vec[T]) T {
	checkPowerOfTwo(v.n)
	return reduceTree(v, func(a, b T) T { return a + b })
}

// ReduceMinTree returns the minimum lane using the fixed pairwise tree.
// Panics if the lane count is not a power of two.
func ReduceMinTree[T Lanes](v Vec[T]) T {
	checkPowerOfTwo(v.n)
	return reduceTree(v, func(a, b T) T {
		if b < a {
			return b
		}
		return a
	})
}

// ReduceMaxTree returns the maximum lane using the fixed pairwise tree.
// Panics if the lane count is not a power of two.
func ReduceMaxTree[T Lanes](v Vec[T]) T {
	checkPowerOfTwo(v.n)
	return reduceTree(v, func(a, b T) T {
		if b > a {
			return b
		}
		return a
	})
}

func reduceTree[T Lanes](v Vec[T], combine func(a, b T) T) T {
	if v.n == 1 {
		return v.lanes[0]
	}
	return combine(reduceTree(LowerHalf(v), combine), reduceTree(UpperHalf(v), combine))
}

func checkPowerOfTwo(n int) {
	if n < 1 || n&(n-1) != 0 {
		panic("hwy: horizontal reduction requires a power-of-two lane count")
	}
}

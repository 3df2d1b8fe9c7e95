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

// Package hwy provides portable fixed-width lane vectors for reduction kernels.
//
// A Vec models one 128-bit or 256-bit SIMD register: it holds a fixed number
// of lanes and every operation works lane-wise, exactly as the hardware
// instruction would. Kernels built on hwy therefore reproduce the
// accumulation order of a real SSE/AVX kernel bit for bit, which is what lets
// a benchmark compare the scalar and lane-parallel variants for exact
// equality.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-highway-reduce/hwy"
//
//	lanes := hwy.LanesFor[float32](hwy.Width256) // 8
//	acc := hwy.ZeroN[float32](lanes)
//	acc = hwy.Add(acc, hwy.LoadN(data, lanes))
//	sum := hwy.ReduceSumTree(acc)
package hwy

import "unsafe"

// Width128 and Width256 are the register widths, in bits, supported by Vec.
const (
	Width128 = 128
	Width256 = 256
)

// maxLanes is the lane capacity of a Vec: 256 bits of float32.
const maxLanes = 8

// Floats is a constraint for Go-native floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Floats | SignedInts | UnsignedInts
}

// Vec is a fixed-width vector of lanes. It is a value type: it lives on the
// stack of the reduction that produced it and is never shared.
//
// Vec instances should not be created directly; use LoadN, SetN, or ZeroN.
type Vec[T Lanes] struct {
	lanes [maxLanes]T
	n     int
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return v.n
}

// GetLane returns the value held in lane i.
// PRECONDITION: 0 <= i < v.NumLanes().
func (v Vec[T]) GetLane(i int) T {
	return v.lanes[:v.n][i]
}

// Data returns a copy of the lanes as a slice.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	out := make([]T, v.n)
	copy(out, v.lanes[:v.n])
	return out
}

// LanesFor returns how many lanes of T fit in a register of the given width
// in bits: 4 float32 or 2 float64 for Width128, 8 float32 or 4 float64 for
// Width256.
//
// Panics if the width is not a positive multiple of the lane size or if the
// resulting lane count exceeds the capacity of a Vec.
func LanesFor[T Lanes](bits int) int {
	var zero T
	laneBits := int(unsafe.Sizeof(zero)) * 8
	if bits <= 0 || bits%laneBits != 0 {
		panic("hwy: register width is not a multiple of the lane size")
	}
	n := bits / laneBits
	if n > maxLanes {
		panic("hwy: register width exceeds vector capacity")
	}
	return n
}

func checkLanes(n int) {
	if n < 1 || n > maxLanes {
		panic("hwy: lane count out of range")
	}
}

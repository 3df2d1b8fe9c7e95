// Package reduce provides float reductions (sum, mean, min/max) in scalar,
// 128-bit and 256-bit lane-parallel variants.
//
// # Algorithm
//
// The lane-parallel kernels follow the shape of a hand-written SSE/AVX
// kernel:
//  1. Split the input into full groups of W lanes and accumulate each group
//     lane-wise into a W-wide accumulator (PartialSums, PartialMins, PartialMaxs)
//  2. Fold every straggler (the N mod W elements past the last full group)
//     into lane 0 of the accumulator
//  3. Collapse the accumulator with the fixed pairwise tree of
//     hwy.ReduceSumTree / hwy.ReduceMinTree / hwy.ReduceMaxTree
//
// Because the order of operations is fixed, a kernel called twice on the same
// buffer returns the same bits both times. Different widths may still round
// differently from each other for inputs that are sensitive to summation
// order; for exactly representable partial sums all variants agree exactly.
//
// # Example Usage
//
//	data := []float32{1, 2, 3, 4, 5}
//	reduce.Sum(data)    // 15, sequential
//	reduce.Sum128(data) // 15, one 4-lane group plus one straggler
//	reduce.ComputeMinMax(data) // {Min: 1, Max: 5}
//
// # Alignment
//
// The hardware kernels these mirror use aligned loads, so callers are
// expected to pass buffers aligned to the register width (16 bytes for
// 128-bit, 32 bytes for 256-bit). The portable code does not check it.
package reduce

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

// Package datagen produces the reproducible input buffers fed to the
// reduction benchmarks.
package datagen

import (
	"math/rand"

	"github.com/ajroetker/go-highway-reduce/internal/mem"
)

// Generator draws uniformly distributed float32 values from a private,
// seeded source. Two generators built with the same seed produce the same
// sequence.
type Generator struct {
	seed uint32
	rng  *rand.Rand
}

// New returns a Generator seeded with seed.
func New(seed uint32) *Generator {
	return &Generator{
		seed: seed,
		rng:  rand.New(rand.NewSource(int64(seed))), //nolint:gosec // benchmark data, not security sensitive
	}
}

// Seed returns the seed the generator was built with.
func (g *Generator) Seed() uint32 {
	return g.seed
}

// Uniform returns a value in [lo, hi]. hi is reachable, lo is not quite:
// the canonical draw is taken from (0, 1].
func (g *Generator) Uniform(lo, hi float32) float32 {
	canonical := 1 - g.rng.Float32()
	return canonical*(hi-lo) + lo
}

// Generate returns n values drawn with Uniform in a buffer aligned to
// mem.Alignment. Returns nil for n <= 0.
func (g *Generator) Generate(n int, lo, hi float32) []float32 {
	buf := mem.AllocAlignedFloat32(n)
	for i := range buf {
		buf[i] = g.Uniform(lo, hi)
	}
	return buf
}

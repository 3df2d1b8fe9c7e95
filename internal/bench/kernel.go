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
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/ajroetker/go-highway-reduce/hwy"
	"github.com/ajroetker/go-highway-reduce/hwy/contrib/reduce"
)

// Kernel is a named, zero-argument operation that can be benchmarked.
type Kernel struct {
	Name string
	run  func(reps int) ([]time.Duration, error)
}

// NewKernel wraps op as a Kernel. The result type only needs to be
// comparable: it is checked against the warm-up baseline with ==.
func NewKernel[R comparable](name string, op func() R) Kernel {
	return Kernel{
		Name: name,
		run: func(reps int) ([]time.Duration, error) {
			return Run(op, reps)
		},
	}
}

// Key returns the name used to select the kernel on the command line:
// lower case with spaces replaced by dashes ("AVX Sum" -> "avx-sum").
func (k Kernel) Key() string {
	return kernelKey(k.Name)
}

func kernelKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

// Registry is an ordered set of kernels.
type Registry struct {
	kernels []Kernel
}

// NewRegistry returns a registry holding kernels in the given order.
func NewRegistry(kernels ...Kernel) *Registry {
	return &Registry{kernels: kernels}
}

// DefaultRegistry returns the standard kernels over data, in the order they
// are benchmarked: the three sums first, then mean and min/max.
//
// PRECONDITION: data is 32-byte aligned and non-empty.
func DefaultRegistry(data []float32) *Registry {
	return NewRegistry(
		NewKernel("Scalar Sum", func() float32 { return reduce.Sum(data) }),
		NewKernel("SSE Sum", func() float32 { return reduce.Sum128(data) }),
		NewKernel("AVX Sum", func() float32 { return reduce.Sum256(data) }),
		NewKernel("AVX Mean", func() float32 { return reduce.Mean(data, hwy.Width256) }),
		NewKernel("Scalar MinMax", func() reduce.MinMax[float32] { return reduce.ComputeMinMax(data) }),
		NewKernel("AVX MinMax", func() reduce.MinMax[float32] { return reduce.MinMaxN(data, hwy.Width256) }),
	)
}

// Kernels returns all kernels in registration order.
func (r *Registry) Kernels() []Kernel {
	return r.kernels
}

// Keys returns the selection keys of all kernels in registration order.
func (r *Registry) Keys() []string {
	return lo.Map(r.kernels, func(k Kernel, _ int) string { return k.Key() })
}

// Select returns the kernels whose key or name matches one of names,
// case-insensitively, in registration order. An empty names selects every
// kernel. Unknown names are an error.
func (r *Registry) Select(names []string) ([]Kernel, error) {
	wanted := lo.Uniq(lo.FilterMap(names, func(name string, _ int) (string, bool) {
		key := kernelKey(name)
		return key, key != ""
	}))
	if len(wanted) == 0 {
		return r.kernels, nil
	}

	keys := r.Keys()
	if unknown := lo.Without(wanted, keys...); len(unknown) > 0 {
		return nil, fmt.Errorf("unknown kernel %q (available: %s)", unknown[0], strings.Join(keys, ", "))
	}

	return lo.Filter(r.kernels, func(k Kernel, _ int) bool {
		return lo.Contains(wanted, k.Key())
	}), nil
}

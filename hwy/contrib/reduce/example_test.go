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

package reduce_test

import (
	"fmt"

	"github.com/ajroetker/go-highway-reduce/hwy"
	"github.com/ajroetker/go-highway-reduce/hwy/contrib/reduce"
)

func ExampleSum128() {
	data := []float32{1, 2, 3, 4, 5}
	fmt.Println(reduce.Sum(data), reduce.Sum128(data), reduce.Sum256(data))
	// Output: 15 15 15
}

func ExampleMean() {
	data := []float32{1, 2, 3, 4, 5}
	fmt.Println(reduce.Mean(data, hwy.Width128))
	// Output: 3
}

func ExampleComputeMinMax() {
	mm := reduce.ComputeMinMax([]float32{1, 2, 3, 4, 5})
	fmt.Printf("min=%v max=%v\n", mm.Min, mm.Max)
	// Output: min=1 max=5
}

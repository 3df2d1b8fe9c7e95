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

package datagen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-highway-reduce/internal/mem"
)

func TestGenerateIsReproducible(t *testing.T) {
	a := New(42).Generate(1000, -1, 1)
	b := New(42).Generate(1000, -1, 1)
	require.Len(t, a, 1000)
	assert.Equal(t, a, b)

	c := New(43).Generate(1000, -1, 1)
	assert.NotEqual(t, a, c)
}

func TestGenerateRange(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi float32
	}{
		{"symmetric", -1, 1},
		{"positive", 10, 20},
		{"narrow", 0.5, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := New(7).Generate(5000, tt.lo, tt.hi)
			for i, v := range buf {
				assert.GreaterOrEqual(t, v, tt.lo, "value %d", i)
				assert.LessOrEqual(t, v, tt.hi, "value %d", i)
			}
		})
	}
}

func TestGenerateAligned(t *testing.T) {
	for _, n := range []int{1, 3, 8, 13, 257} {
		buf := New(1).Generate(n, -1, 1)
		assert.Len(t, buf, n)
		assert.True(t, mem.IsAligned(buf, mem.Alignment))
	}
	assert.Nil(t, New(1).Generate(0, -1, 1))
}

func TestSeed(t *testing.T) {
	assert.Equal(t, uint32(99), New(99).Seed())
}

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

import "os"

// DispatchLevel identifies the widest vector instruction set the host CPU
// offers. It is informational: reduction kernels always run the portable
// lane code, whatever the level.
type DispatchLevel int

const (
	DispatchScalar DispatchLevel = iota
	DispatchSSE2
	DispatchSSE3
	DispatchAVX
	DispatchAVX2
	DispatchNEON
)

// String returns the string representation of a dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchSSE3:
		return "sse3"
	case DispatchAVX:
		return "avx"
	case DispatchAVX2:
		return "avx2"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Set once by the platform init functions.
var (
	currentLevel DispatchLevel
	currentWidth int
	currentName  string
)

// CurrentLevel returns the detected dispatch level.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the widest native register width in bytes.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns the name of the detected instruction set.
func CurrentName() string {
	return currentName
}

// NativeWidth reports whether the host has registers at least bits wide.
// In scalar mode only 128-bit vectors are reported as native, matching the
// width scalar mode pretends to have.
func NativeWidth(bits int) bool {
	return currentWidth*8 >= bits
}

// NoSimdEnv reports whether HWY_NO_SIMD is set, which forces scalar mode.
func NoSimdEnv() bool {
	return os.Getenv("HWY_NO_SIMD") != ""
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // Use 16-byte vectors even in scalar mode for consistency
	currentName = "scalar"
}

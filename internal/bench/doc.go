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

// Package bench times reduction kernels and checks that every timed call
// reproduces the answer of an untimed warm-up call.
//
// A benchmark of one kernel goes through three states:
//
//	warm-up   run the kernel once, keep its result as the baseline
//	timed     run it reps times, timing each call and comparing the result
//	          with the baseline using ==
//	terminal  reps samples, or a *ValidationError and no samples
//
// Kernels must be pure functions of immutable captured state; anything that
// changes between calls will be reported as a validation failure.
package bench

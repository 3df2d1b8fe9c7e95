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

// Command reducebench benchmarks scalar, 128-bit and 256-bit float
// reductions over one generated buffer and checks that every timed call of a
// kernel reproduces the result of its warm-up call.
//
// Usage:
//
//	reducebench [flags] NumFloats NumRepetitions Seed
//
// Exit codes: 1 wrong argument count, 2 bad NumFloats, 3 bad
// NumRepetitions, 4 bad Seed, 5 bad flag. A kernel failing validation is
// reported but does not change the exit code.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

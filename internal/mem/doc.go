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

// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Provides 32-byte aligned allocation so that a buffer can be walked with
// 128-bit and 256-bit aligned loads. The Go runtime frees the memory once
// the returned slice is unreachable; there is no explicit release.
package mem

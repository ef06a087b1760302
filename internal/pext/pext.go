// Copyright 2024 The Cockroach Authors
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

// Package pext implements the bit-extract (PEXT) primitive every mph
// policy is built from: gather the bits of a value selected by a mask into
// contiguous low-order positions. Platforms with a native BMI2 PEXT
// instruction use it directly (see pext_amd64.go); everywhere else a
// portable software gather is used instead (see pext_generic.go). The two
// paths are bit-exact with each other.
package pext

// extractSoftware is the portable bit gather: iterate the 1-bits of mask
// from low to high, shifting the corresponding bit of value into the next
// free output position. Correctness is bit-exact with the hardware PEXT
// instruction; only throughput differs.
func extractSoftware(value, mask uint64) uint64 {
	var result uint64
	var dst uint
	for mask != 0 {
		bit := mask & (-mask) // lowest set bit
		if value&bit != 0 {
			result |= 1 << dst
		}
		mask &^= bit
		dst++
	}
	return result
}

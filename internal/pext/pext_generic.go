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

//go:build !amd64

package pext

// Extract returns a value whose low popcount(mask) bits are the bits of
// value at the positions where mask has a 1, in ascending order; bits
// above popcount(mask) are zero. Architectures without a native
// single-instruction PEXT always use the portable gather; correctness is
// bit-exact with the amd64 hardware path, only throughput differs.
func Extract(value, mask uint64) uint64 {
	return extractSoftware(value, mask)
}

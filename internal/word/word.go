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

// Package word normalizes variable-length byte keys into the fixed 64-bit
// machine words that every mph policy operates on. All policies search for
// and apply masks over this uniform domain rather than over raw byte
// slices of varying length.
package word

import "encoding/binary"

// MaxLen is the number of leading bytes folded into a Word. Bytes beyond
// this offset never participate in hashing; they only matter to the
// final verification step, which compares against the caller's original
// slice length.
const MaxLen = 8

// Load packs the leading bytes of b into a little-endian uint64, zero-padded
// if b is shorter than MaxLen and truncated if it is longer. An empty b
// loads to zero.
func Load(b []byte) uint64 {
	var buf [MaxLen]byte
	copy(buf[:], b)
	return binary.LittleEndian.Uint64(buf[:])
}

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

package mph

import (
	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

// HashFunc selects the general-purpose string hash Fingerprint uses. It has
// no bearing on Lookup, which never hashes its input; it exists for callers
// that want a stable 64-bit fingerprint of a symbol for their own indexing
// (dedup, sharding, cache keys) without pulling in a hashing dependency
// themselves.
type HashFunc int

const (
	// HashXXHash64 is cespare/xxhash/v2's implementation of xxHash64.
	HashXXHash64 HashFunc = iota
	// HashXXH3 is zeebo/xxh3's implementation of XXH3-64.
	HashXXH3
	// HashMurmur3 is spaolacci/murmur3's 64-bit variant (x64, 128-bit
	// output truncated to the first word).
	HashMurmur3
)

// Fingerprint hashes s with the algorithm fn selects. Unknown values of fn
// fall back to HashXXHash64.
func Fingerprint(fn HashFunc, s string) uint64 {
	switch fn {
	case HashXXH3:
		return xxh3.HashString(s)
	case HashMurmur3:
		lo, _ := murmur3.Sum128([]byte(s))
		return lo
	default:
		return xxhash.Sum64String(s)
	}
}

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

// Package mask searches for a PEXT mask that separates a fixed set of
// 64-bit words under pext.Extract, used to materialize both the
// pext_direct and pext_split_on_first_char policy tables.
package mask

import (
	"math/bits"

	"github.com/kjusiak/mph/internal/pext"
)

// Find searches for a 64-bit mask with popcount at most maxBits such that
// pext.Extract(w, mask) is distinct for every w in words. It reports false
// if no such mask exists within the search budget.
//
// The search is the greedy refinement described by the mask synthesizer:
// start from the OR of every pairwise XOR (any separating mask must
// intersect each pair's differing bits, so bits outside that set are
// useless), then drop bits — highest order first, to keep the
// discriminating bits clustered low — as long as the words remain
// pairwise distinct without them, stopping as soon as at most maxBits bits
// are left.
func Find(words []uint64, maxBits int) (uint64, bool) {
	if len(words) <= 1 {
		return 0, true
	}

	var differing uint64
	for i := 0; i < len(words); i++ {
		for j := i + 1; j < len(words); j++ {
			differing |= words[i] ^ words[j]
		}
	}

	m := differing
	for b := 63; b >= 0 && bits.OnesCount64(m) > maxBits; b-- {
		bit := uint64(1) << uint(b)
		if m&bit == 0 {
			continue
		}
		if candidate := m &^ bit; separates(words, candidate) {
			m = candidate
		}
	}

	if bits.OnesCount64(m) > maxBits {
		return 0, false
	}
	// differing only OR's in the bits where some pair of words disagrees;
	// two distinct symbols that load to the same word (e.g. "A" and
	// "A\x00") contribute nothing, and m would then falsely appear to
	// separate them. Never trust m without checking it.
	if !separates(words, m) {
		return 0, false
	}
	return m, true
}

// separates reports whether pext.Extract(w, mask) is distinct for every w
// in words.
func separates(words []uint64, mask uint64) bool {
	seen := make(map[uint64]struct{}, len(words))
	for _, w := range words {
		slot := pext.Extract(w, mask)
		if _, dup := seen[slot]; dup {
			return false
		}
		seen[slot] = struct{}{}
	}
	return true
}

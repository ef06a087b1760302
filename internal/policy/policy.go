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

// Package policy implements the two table-building and lookup schemes the
// hash façade's cascade chooses between: pext_direct, a single mask over a
// single table, and pext_split_on_first_char, a first-byte dispatch to
// per-bucket masks and tables.
package policy

import "errors"

// ErrNoMask reports that no mask within maxBits could separate the symbol
// set (or one of its first-byte buckets, for the split policy). The
// façade's cascade treats this as "try the next candidate" rather than a
// fatal error — the Go analogue of a failed compile-time substitution
// check.
var ErrNoMask = errors.New("pext: no separating mask within maxBits")

// Cell is the persisted 16-byte table entry: 8 bytes of zero-padded key, a
// 1-based index (0 = empty), and the original key length. The length field
// is what lets the final equality check reject an input that happens to
// share its first 8 bytes with a stored key but differs in length.
type Cell struct {
	Key    [8]byte
	Index  uint32
	Length uint32
}

// mask32 converts an equality result into an all-ones or all-zero mask, so
// a miss can be selected to the sentinel 0 with a single AND rather than a
// branch on the lookup hot path.
func mask32(eq bool) uint32 {
	var i uint32
	if eq {
		i = 1
	}
	return -i
}

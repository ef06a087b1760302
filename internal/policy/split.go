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

package policy

import (
	"fmt"

	"github.com/emirpasic/gods/trees/binaryheap"

	"github.com/kjusiak/mph/internal/mask"
	"github.com/kjusiak/mph/internal/pext"
	"github.com/kjusiak/mph/internal/word"
)

// bucketGroup is one first-byte partition awaiting a mask search.
type bucketGroup struct {
	first   byte
	indices []int
}

// byDescendingSize orders bucketGroups largest-first, so NewSplit spends
// its mask search on the costliest buckets before the cheap ones — the
// bucket most likely to exhaust maxBits should fail fast rather than last.
func byDescendingSize(a, b interface{}) int {
	return len(b.(bucketGroup).indices) - len(a.(bucketGroup).indices)
}

// bucket holds one first-byte partition's mask and sub-table, applied to
// the remaining bytes of a key. A zero-value bucket (nil table) means no
// symbol shares that first byte; lookups dispatched there always miss.
type bucket struct {
	mask  uint64
	table []Cell
}

// Split is the pext_split_on_first_char<MaxBits> policy: a 256-entry
// first-byte dispatch table, each non-empty entry holding its own mask and
// a sub-table of 2^MaxBits cells.
type Split struct {
	dispatch [256]bucket
}

// NewSplit builds a Split policy for symbols, failing with ErrNoMask if any
// non-empty first-byte bucket cannot be separated within maxBits. Callers
// are expected to have already rejected duplicate, empty, or over-length
// symbols.
func NewSplit(symbols []string, maxBits int) (*Split, error) {
	indicesByFirst := make(map[byte][]int)
	for i, s := range symbols {
		indicesByFirst[s[0]] = append(indicesByFirst[s[0]], i)
	}

	queue := binaryheap.NewWith(byDescendingSize)
	for first, indices := range indicesByFirst {
		queue.Push(bucketGroup{first: first, indices: indices})
	}

	s := &Split{}
	for {
		v, ok := queue.Pop()
		if !ok {
			break
		}
		group := v.(bucketGroup)
		first, indices := group.first, group.indices

		tails := make([]uint64, len(indices))
		for j, idx := range indices {
			tails[j] = word.Load([]byte(symbols[idx])[1:])
		}

		m, ok := mask.Find(tails, maxBits)
		if !ok {
			return nil, fmt.Errorf("pext_split_on_first_char<%d>: bucket %q: %w", maxBits, first, ErrNoMask)
		}

		table := make([]Cell, 1<<uint(maxBits))
		for j, idx := range indices {
			slot := pext.Extract(tails[j], m)
			var key [8]byte
			copy(key[:], symbols[idx])
			table[slot] = Cell{Key: key, Index: uint32(idx + 1), Length: uint32(len(symbols[idx]))}
		}
		s.dispatch[first] = bucket{mask: m, table: table}
	}
	return s, nil
}

// Lookup dispatches on the first byte of input, then applies that bucket's
// mask to the remaining bytes, mirroring NewSplit's build-time layout.
func (s *Split) Lookup(input []byte) uint32 {
	b := &s.dispatch[input[0]]
	if b.table == nil {
		return 0
	}

	tail := word.Load(input[1:])
	slot := pext.Extract(tail, b.mask)
	c := &b.table[slot]

	var key [8]byte
	copy(key[:], input)
	eq := c.Key == key && c.Length == uint32(len(input))
	return c.Index & mask32(eq)
}

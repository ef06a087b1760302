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

	"github.com/kjusiak/mph/internal/mask"
	"github.com/kjusiak/mph/internal/pext"
	"github.com/kjusiak/mph/internal/word"
)

// Direct is the pext_direct<MaxBits> policy: one global mask, one lookup
// table of 2^MaxBits cells. Each cell stores either the zero Cell (empty)
// or the padded key plus 1-based index of the symbol that hashes there.
type Direct struct {
	mask  uint64
	table []Cell
}

// NewDirect builds a Direct policy for symbols, failing with ErrNoMask if
// no mask of popcount <= maxBits separates every symbol under pext.
// Callers are expected to have already rejected duplicate, empty, or
// over-length symbols; NewDirect only concerns itself with mask
// separability.
func NewDirect(symbols []string, maxBits int) (*Direct, error) {
	words := make([]uint64, len(symbols))
	for i, s := range symbols {
		words[i] = word.Load([]byte(s))
	}

	m, ok := mask.Find(words, maxBits)
	if !ok {
		return nil, fmt.Errorf("pext_direct<%d>: %w", maxBits, ErrNoMask)
	}

	d := &Direct{
		mask:  m,
		table: make([]Cell, 1<<uint(maxBits)),
	}
	for i, s := range symbols {
		slot := pext.Extract(words[i], m)
		var key [8]byte
		copy(key[:], s)
		d.table[slot] = Cell{Key: key, Index: uint32(i + 1), Length: uint32(len(s))}
	}
	return d, nil
}

// Lookup implements the call-time steps: load the input into a word,
// extract the candidate slot, and verify the stored cell matches both the
// bytes and the length of input before returning its index.
func (d *Direct) Lookup(input []byte) uint32 {
	w := word.Load(input)
	slot := pext.Extract(w, d.mask)
	c := &d.table[slot]

	var key [8]byte
	copy(key[:], input)
	eq := c.Key == key && c.Length == uint32(len(input))
	return c.Index & mask32(eq)
}

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

import "github.com/kjusiak/mph/internal/policy"

// Policy is implemented by a materialized table capable of answering
// Lookup for the symbol set it was built from. A custom Policy plugged in
// through WithPolicy must preserve the 0-means-missing, 1..N-means-index
// contract itself; Hash.Lookup trusts its return value as-is and performs
// no re-validation on the hot path.
type Policy interface {
	Lookup(input []byte) uint32
}

// PolicyFactory builds a Policy for symbols, or returns an error wrapping
// policy.ErrNoMask if this policy cannot separate the symbol set. This is
// the Go analogue of a failed compile-time substitution check: New's
// cascade tries each factory in turn and keeps the first one that
// succeeds.
type PolicyFactory func(symbols []string) (Policy, error)

// Direct returns a PolicyFactory for the pext_direct<maxBits> policy: a
// single mask and a single table of 2^maxBits cells.
func Direct(maxBits int) PolicyFactory {
	return func(symbols []string) (Policy, error) {
		return policy.NewDirect(symbols, maxBits)
	}
}

// SplitOnFirstChar returns a PolicyFactory for the
// pext_split_on_first_char<maxBits> policy: dispatch on the first byte to
// a per-bucket mask and sub-table.
func SplitOnFirstChar(maxBits int) PolicyFactory {
	return func(symbols []string) (Policy, error) {
		return policy.NewSplit(symbols, maxBits)
	}
}

// defaultDirectBits is the priority order the façade tries before falling
// back to the two-level split scheme (defaultSplitBits): successively larger
// direct tables, smallest first, since a smaller table is cheaper to keep
// resident.
var defaultDirectBits = []int{7, 8, 16}
var defaultSplitBits = []int{7, 8}

// defaultCascade builds the default candidate list, dropping any candidate
// whose table width would exceed maxBits (see WithMaxBits).
func defaultCascade(maxBits int) []PolicyFactory {
	var candidates []PolicyFactory
	for _, b := range defaultDirectBits {
		if b <= maxBits {
			candidates = append(candidates, Direct(b))
		}
	}
	for _, b := range defaultSplitBits {
		if b <= maxBits {
			candidates = append(candidates, SplitOnFirstChar(b))
		}
	}
	return candidates
}

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

// Package mph builds a minimal perfect hash over a fixed, known-ahead-of-time
// set of short byte-string keywords: every keyword maps to a unique 1-based
// index in [1, N] and every other input maps to the sentinel 0.
//
// # Construction
//
// New tries a small cascade of policies, in order, and keeps the first one
// able to separate the symbol set:
//
//	pext_direct<7>, pext_direct<8>, pext_direct<16>,
//	pext_split_on_first_char<7>, pext_split_on_first_char<8>
//
// A direct policy (see internal/policy) holds one 64-bit mask and one table
// of 2^MaxBits cells; a split policy dispatches on the first byte of the
// key to a per-bucket mask and sub-table applied to the remaining bytes.
// Both are built on top of internal/pext's bit-extract (PEXT) primitive and
// internal/mask's greedy mask search: drop bits, highest first, until at
// most MaxBits remain that still separate every symbol under PEXT. The
// result fits the budget but is not guaranteed to be the smallest such set.
//
// WithPolicy overrides the cascade with an explicit candidate list,
// including a single custom PolicyFactory — the Go analogue of overriding
// the default_policies template parameter.
//
// # Lookup
//
// Once built, a Hash is immutable. Lookup normalizes its input into a
// 64-bit word, applies the chosen policy to produce a candidate table
// index, and validates the candidate by comparing both the stored key
// bytes and the stored length against the input — this is what lets the
// sentinel 0 double as both "wrong content" and "wrong length" without a
// second table. There are no allocations and no locks on the lookup hot
// path, so a *Hash is safe for unsynchronized concurrent use by any number
// of goroutines. The only branches are the input-length guard in Lookup,
// the split policy's check for a first byte no symbol starts with, and the
// final select.
//
// # Limits
//
// Keys longer than 8 bytes are out of scope: the word loader only folds
// the leading 8 bytes into the machine word every policy operates on, so
// construction rejects any symbol longer than that outright rather than
// silently truncating it. There is no mutation API; the symbol set is
// frozen at construction. There is no case folding, no trimming, and no
// Unicode-aware comparison — two byte strings are either bit-for-bit
// identical and the same length, or they are not the same key.
package mph

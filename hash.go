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
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/kjusiak/mph/internal/word"
)

// Hash is an immutable minimal perfect hash over a fixed symbol set. The
// zero value is not usable; construct one with New.
//
// A *Hash holds only read-only tables after construction, performs no
// allocation or I/O on Lookup, and is safe for unsynchronized concurrent
// use by any number of goroutines.
type Hash struct {
	policy Policy
	n      int
}

// New builds a Hash for symbols, in the order given — symbol i (0-based)
// becomes index i+1. By default construction tries the cascade
//
//	pext_direct<7>, pext_direct<8>, pext_direct<16>,
//	pext_split_on_first_char<7>, pext_split_on_first_char<8>
//
// in order and keeps the first candidate able to separate every symbol.
// WithPolicy overrides the candidate list; WithMaxBits caps how wide a
// table, direct or split, the default cascade will try.
//
// New fails if symbols contains a duplicate, an empty string, or a symbol
// longer than 8 bytes, or if no candidate in the cascade can separate the
// set. An empty or nil symbols succeeds, producing a Hash whose Lookup
// always returns 0.
func New(symbols []string, opts ...Option) (*Hash, error) {
	cfg := config{logger: zerolog.Nop(), maxBits: 16}
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	if err := validateSymbols(symbols); err != nil {
		return nil, err
	}

	candidates := cfg.candidates
	if candidates == nil {
		candidates = defaultCascade(cfg.maxBits)
	}

	var p Policy
	var err error
	if cfg.parallel {
		p, err = selectParallel(candidates, symbols, cfg.logger)
	} else {
		p, err = selectSequential(candidates, symbols, cfg.logger)
	}
	if err != nil {
		return nil, err
	}

	cfg.logger.Debug().Int("symbols", len(symbols)).Msg("mph: hash constructed")
	return &Hash{policy: p, n: len(symbols)}, nil
}

// selectSequential tries each candidate in order and returns the first
// success, mirroring the source library's compile-time substitution
// cascade: try, and on failure fall through to the next.
func selectSequential(candidates []PolicyFactory, symbols []string, logger zerolog.Logger) (Policy, error) {
	var firstErr error
	for i, factory := range candidates {
		p, err := factory(symbols)
		if err != nil {
			logger.Debug().Int("candidate", i).Err(err).Msg("mph: policy candidate rejected")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		logger.Debug().Int("candidate", i).Msg("mph: policy selected")
		return p, nil
	}
	return nil, wrapNoApplicablePolicy(firstErr)
}

// selectParallel evaluates every candidate concurrently and keeps the
// first success in priority order. Each candidate is independent and has
// no effect until its result is used, so running them concurrently never
// changes which one wins — only how long construction takes.
func selectParallel(candidates []PolicyFactory, symbols []string, logger zerolog.Logger) (Policy, error) {
	policies := make([]Policy, len(candidates))
	errs := make([]error, len(candidates))

	var g errgroup.Group
	for i, factory := range candidates {
		i, factory := i, factory
		g.Go(func() error {
			policies[i], errs[i] = factory(symbols)
			return nil
		})
	}
	_ = g.Wait() // factory errors are carried in errs, not returned here

	var firstErr error
	for i, p := range policies {
		if errs[i] != nil {
			logger.Debug().Int("candidate", i).Err(errs[i]).Msg("mph: policy candidate rejected")
			if firstErr == nil {
				firstErr = errs[i]
			}
			continue
		}
		logger.Debug().Int("candidate", i).Msg("mph: policy selected")
		return p, nil
	}
	return nil, wrapNoApplicablePolicy(firstErr)
}

func wrapNoApplicablePolicy(cause error) error {
	if cause == nil {
		return ErrNoApplicablePolicy
	}
	return fmt.Errorf("%w: %v", ErrNoApplicablePolicy, cause)
}

// validateSymbols enforces the invariants spec.md's data model places on
// the symbol set: non-empty entries, no entry longer than the word loader
// supports, and no duplicates.
func validateSymbols(symbols []string) error {
	seen := make(map[string]int, len(symbols))
	for i, s := range symbols {
		if len(s) == 0 {
			return fmt.Errorf("%w: symbol %d", ErrEmptySymbol, i)
		}
		if len(s) > word.MaxLen {
			return fmt.Errorf("%w: symbol %d (%q, length %d)", ErrSymbolTooLong, i, s, len(s))
		}
		if j, dup := seen[s]; dup {
			return fmt.Errorf("%w: %q at indices %d and %d", ErrDuplicateSymbol, s, j, i)
		}
		seen[s] = i
	}
	return nil
}

// Lookup returns the 1-based index of input in the symbol set New was
// built from, or the sentinel 0 if input is not a member. Empty input and
// input longer than any supported symbol fast-path to 0 without touching
// any table.
func (h *Hash) Lookup(input []byte) uint32 {
	if len(input) == 0 || len(input) > word.MaxLen {
		return 0
	}
	return h.policy.Lookup(input)
}

// LookupFixed is Lookup for a caller that already knows its input width at
// the call site: it takes a stack-sized 8-byte array and an explicit
// length, and looks up the first length bytes of input. A length outside
// [1, 8] returns 0 without touching any table.
func (h *Hash) LookupFixed(input [8]byte, length int) uint32 {
	if length <= 0 || length > word.MaxLen {
		return 0
	}
	return h.policy.Lookup(input[:length])
}

// Len returns the number of symbols the Hash was built from.
func (h *Hash) Len() int {
	return h.n
}

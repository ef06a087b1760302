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

import "github.com/rs/zerolog"

// Option provides an interface to do work on the construction config before
// New commits to a cascade.
type Option interface {
	apply(cfg *config)
}

type config struct {
	candidates []PolicyFactory
	logger     zerolog.Logger
	maxBits    int
	parallel   bool
}

type policyOption struct {
	candidates []PolicyFactory
}

func (op policyOption) apply(cfg *config) { cfg.candidates = op.candidates }

// WithPolicy overrides the default cascade with candidates, tried in the
// order given. The first candidate able to separate the symbol set wins;
// WithMaxBits has no effect once WithPolicy is supplied.
func WithPolicy(candidates ...PolicyFactory) Option {
	return policyOption{candidates}
}

type loggerOption struct {
	logger zerolog.Logger
}

func (op loggerOption) apply(cfg *config) { cfg.logger = op.logger }

// WithLogger injects a logger for construction-time diagnostics: which
// cascade candidate was rejected and why, which one was finally selected,
// and how many symbols the resulting Hash holds. Table sizes are not
// logged. The default is a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return loggerOption{logger}
}

type maxBitsOption struct {
	maxBits int
}

func (op maxBitsOption) apply(cfg *config) { cfg.maxBits = op.maxBits }

// WithMaxBits drops every default-cascade candidate, direct or split, whose
// MaxBits exceeds n, bounding the largest table the default cascade can
// build. The default is 16, matching the widest candidate in the built-in
// cascade.
func WithMaxBits(n int) Option {
	return maxBitsOption{n}
}

type parallelOption struct {
	parallel bool
}

func (op parallelOption) apply(cfg *config) { cfg.parallel = op.parallel }

// WithParallelCascade evaluates every cascade candidate concurrently and
// keeps the first success in priority order, rather than trying candidates
// one at a time. Each candidate is independent and side-effect-free until
// committed, so this only changes construction latency, never the result.
func WithParallelCascade() Option {
	return parallelOption{true}
}

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

import "errors"

// These are the only ways New can fail; Lookup never fails. Wrap one of
// these with fmt.Errorf("...: %w", ...) rather than minting a new error,
// so callers can keep using errors.Is.
var (
	// ErrNoApplicablePolicy reports that every candidate in the cascade
	// failed to find a separating mask for the symbol set.
	ErrNoApplicablePolicy = errors.New("mph: no applicable policy for this symbol set")

	// ErrDuplicateSymbol reports a repeated entry in the symbol set.
	ErrDuplicateSymbol = errors.New("mph: duplicate symbol")

	// ErrEmptySymbol reports an empty string in the symbol set. The source
	// library leaves this case undefined; this package forbids it outright.
	ErrEmptySymbol = errors.New("mph: empty symbol is not supported")

	// ErrSymbolTooLong reports a symbol longer than the 8 bytes the word
	// loader folds into a machine word.
	ErrSymbolTooLong = errors.New("mph: symbol exceeds the 8-byte maximum")
)

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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFingerprintIsDeterministic(t *testing.T) {
	for _, fn := range []HashFunc{HashXXHash64, HashXXH3, HashMurmur3} {
		first := Fingerprint(fn, "enter\ndelete\nesc")
		for i := 0; i < 5; i++ {
			require.Equal(t, first, Fingerprint(fn, "enter\ndelete\nesc"))
		}
	}
}

func TestFingerprintDistinguishesInput(t *testing.T) {
	for _, fn := range []HashFunc{HashXXHash64, HashXXH3, HashMurmur3} {
		require.NotEqual(t, Fingerprint(fn, "a"), Fingerprint(fn, "b"))
	}
}

func TestFingerprintAlgorithmsDisagree(t *testing.T) {
	s := "III     \nAGM-C   \nLOPE    "
	xxhash := Fingerprint(HashXXHash64, s)
	xxh3 := Fingerprint(HashXXH3, s)
	murmur3 := Fingerprint(HashMurmur3, s)
	require.NotEqual(t, xxhash, xxh3)
	require.NotEqual(t, xxhash, murmur3)
	require.NotEqual(t, xxh3, murmur3)
}

func TestFingerprintUnknownFuncFallsBackToXXHash64(t *testing.T) {
	require.Equal(t, Fingerprint(HashXXHash64, "AB"), Fingerprint(HashFunc(99), "AB"))
}

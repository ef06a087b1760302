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

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kjusiak/mph"
)

func TestParseHashFunc(t *testing.T) {
	cases := map[string]mph.HashFunc{
		"xxhash":  mph.HashXXHash64,
		"xxh3":    mph.HashXXH3,
		"murmur3": mph.HashMurmur3,
	}
	for name, want := range cases {
		got, err := parseHashFunc(name)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestParseHashFuncRejectsUnknown(t *testing.T) {
	_, err := parseHashFunc("sha256")
	require.Error(t, err)
}

func TestWriteGeneratedStampsFingerprint(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "symbols_gen.go")

	fp := mph.Fingerprint(mph.HashXXHash64, "A\nB\nC")
	require.NoError(t, writeGenerated(path, "main", "Symbols", []string{"A", "B", "C"}, fp))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(contents), "package main")
	require.Contains(t, string(contents), `"A",`)
	require.Contains(t, string(contents), "Fingerprint:")
}

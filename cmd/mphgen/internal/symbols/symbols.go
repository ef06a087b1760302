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

// Package symbols loads and deduplicates the newline-delimited symbol
// lists mphgen consumes. Large lists are memory-mapped rather than read
// into a buffer up front, and deduplication runs over concurrent chunk
// scans into a shared lock-free map, since the files this tool targets
// are curated offline and can run into the millions of lines.
package symbols

import (
	"bytes"
	"fmt"
	"os"
	"runtime"
	"sort"

	"github.com/alphadose/haxmap"
	"github.com/edsrzf/mmap-go"
	"golang.org/x/sync/errgroup"
)

func openFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("symbols: open %s: %w", path, err)
	}
	return f, nil
}

// Load reads the newline-delimited file at path, trims surrounding
// whitespace from each line, drops blank lines, deduplicates what remains,
// and returns the survivors in sorted order for a reproducible build.
func Load(path string) ([]string, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("symbols: mmap %s: %w", path, err)
	}
	defer m.Unmap()

	seen := haxmap.New[string, struct{}]()
	if err := scanConcurrently(m, seen); err != nil {
		return nil, err
	}

	out := make([]string, 0, seen.Len())
	seen.ForEach(func(key string, _ struct{}) bool {
		out = append(out, key)
		return true
	})
	sort.Strings(out)
	return out, nil
}

// scanConcurrently splits data into one chunk per available CPU, aligns
// each chunk boundary to the next newline so no line is split across two
// workers, and has each worker insert its trimmed, non-blank lines into
// the shared map.
func scanConcurrently(data []byte, seen *haxmap.Map[string, struct{}]) error {
	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}
	chunkSize := (len(data) + workers - 1) / workers
	if chunkSize == 0 {
		return nil
	}

	var g errgroup.Group
	start := 0
	for start < len(data) {
		end := start + chunkSize
		if end > len(data) {
			end = len(data)
		} else if nl := bytes.IndexByte(data[end:], '\n'); nl >= 0 {
			end += nl + 1
		} else {
			end = len(data)
		}

		chunk := data[start:end]
		g.Go(func() error {
			for _, line := range bytes.Split(chunk, []byte{'\n'}) {
				line = bytes.TrimSpace(line)
				if len(line) == 0 {
					continue
				}
				seen.Set(string(line), struct{}{})
			}
			return nil
		})
		start = end
	}
	return g.Wait()
}

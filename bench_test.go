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
	"strconv"
	"testing"

	"github.com/aclements/go-perfevent/perfbench"

	"github.com/kjusiak/mph/internal/testdata"
)

func BenchmarkLookupHit(b *testing.B) {
	b.Run("policy=direct", benchLookupHit(Direct(16)))
	b.Run("policy=splitOnFirstChar", benchLookupHit(SplitOnFirstChar(8)))
	b.Run("policy=cascade", benchLookupHit(nil))
}

func benchLookupHit(policy PolicyFactory) func(*testing.B) {
	return func(b *testing.B) {
		var opts []Option
		if policy != nil {
			opts = append(opts, WithPolicy(policy))
		}
		h, err := New(testdata.Tickers, opts...)
		if err != nil {
			b.Fatal(err)
		}

		keys := make([][]byte, len(testdata.Tickers))
		for i, s := range testdata.Tickers {
			keys[i] = []byte(s)
		}

		c := perfbench.Open(b)
		_ = c
		b.ResetTimer()
		var sum uint32
		for i := 0; i < b.N; i++ {
			sum += h.Lookup(keys[i%len(keys)])
		}
		b.StopTimer()
		fmt.Fprint(discard{}, sum)
	}
}

func BenchmarkLookupMiss(b *testing.B) {
	h, err := New(testdata.Tickers)
	if err != nil {
		b.Fatal(err)
	}

	misses := make([][]byte, len(testdata.Tickers))
	for i := range misses {
		misses[i] = []byte("Z" + strconv.Itoa(i) + "       ")
	}

	c := perfbench.Open(b)
	_ = c
	b.ResetTimer()
	var sum uint32
	for i := 0; i < b.N; i++ {
		sum += h.Lookup(misses[i%len(misses)])
	}
	b.StopTimer()
	fmt.Fprint(discard{}, sum)
}

func BenchmarkNewCascade(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := New(testdata.Tickers); err != nil {
			b.Fatal(err)
		}
	}
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

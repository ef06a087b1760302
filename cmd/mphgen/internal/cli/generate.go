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
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/kjusiak/mph"
	"github.com/kjusiak/mph/cmd/mphgen/internal/symbols"
)

func newGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "generate <symbols-file>",
		Short:        "deduplicate a symbol file and emit a Go source file, failing if no policy can hash the result",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         runGenerate,
	}

	cmd.Flags().StringP("out", "o", "symbols_gen.go", "path of the generated Go source file")
	cmd.Flags().String("package", "main", "package name for the generated file")
	cmd.Flags().String("var", "Symbols", "exported variable name for the generated symbol slice")
	cmd.Flags().Int("max-bits", 16, "cap on direct- and split-table width the dry-run build will try")
	cmd.Flags().Bool("parallel", false, "evaluate cascade candidates concurrently during the dry-run build")
	cmd.Flags().Bool("verbose", false, "log construction diagnostics to stderr")
	cmd.Flags().String("hash-func", "xxhash", "fingerprint algorithm stamped into the generated file: xxhash, xxh3, or murmur3")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("out")
	pkg, _ := cmd.Flags().GetString("package")
	varName, _ := cmd.Flags().GetString("var")
	maxBits, _ := cmd.Flags().GetInt("max-bits")
	parallel, _ := cmd.Flags().GetBool("parallel")
	verbose, _ := cmd.Flags().GetBool("verbose")
	hashFuncName, _ := cmd.Flags().GetString("hash-func")

	hashFunc, err := parseHashFunc(hashFuncName)
	if err != nil {
		return fmt.Errorf("mphgen: %w", err)
	}

	logger := zerolog.Nop()
	if verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
	}

	list, err := symbols.Load(args[0])
	if err != nil {
		return err
	}
	logger.Info().Int("count", len(list)).Str("source", args[0]).Msg("mphgen: symbols loaded")

	opts := []mph.Option{mph.WithLogger(logger), mph.WithMaxBits(maxBits)}
	if parallel {
		opts = append(opts, mph.WithParallelCascade())
	}
	if _, err := mph.New(list, opts...); err != nil {
		return fmt.Errorf("mphgen: %s: %w", args[0], err)
	}
	logger.Info().Msg("mphgen: dry-run build succeeded, every symbol is separable")

	fingerprint := mph.Fingerprint(hashFunc, strings.Join(list, "\n"))
	logger.Info().Str("hashFunc", hashFuncName).Uint64("fingerprint", fingerprint).Msg("mphgen: symbol list fingerprinted")

	return writeGenerated(out, pkg, varName, list, fingerprint)
}

// parseHashFunc maps the --hash-func flag to the mph.HashFunc Fingerprint
// uses to stamp the generated file, so two runs over an unchanged input
// file produce an identical fingerprint comment and a changed input is
// caught by a diff on that single line.
func parseHashFunc(name string) (mph.HashFunc, error) {
	switch name {
	case "xxhash":
		return mph.HashXXHash64, nil
	case "xxh3":
		return mph.HashXXH3, nil
	case "murmur3":
		return mph.HashMurmur3, nil
	default:
		return 0, fmt.Errorf("unknown --hash-func %q: want xxhash, xxh3, or murmur3", name)
	}
}

func writeGenerated(path, pkg, varName string, list []string, fingerprint uint64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("mphgen: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "// Code generated by mphgen. DO NOT EDIT.\n")
	fmt.Fprintf(w, "// Fingerprint: %#016x\n\n", fingerprint)
	fmt.Fprintf(w, "package %s\n\n", pkg)
	fmt.Fprintf(w, "var %s = []string{\n", varName)
	for _, s := range list {
		fmt.Fprintf(w, "\t%q,\n", s)
	}
	fmt.Fprintf(w, "}\n")
	return w.Flush()
}

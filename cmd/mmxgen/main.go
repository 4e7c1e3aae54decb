// Copyright 2026 go-mmx Authors
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

// Command mmxgen regenerates alias.go, the legacy instruction-mnemonic
// bindings of the mmx package.
//
// Usage:
//
//	mmxgen -dir ./mmx
//
// Or via go:generate from inside the package:
//
//	//go:generate go run github.com/janpfeifer/go-mmx/cmd/mmxgen -dir .
//
// The generator parses the package, looks up the canonical implementation of
// every mnemonic in the binding table, and emits one thin wrapper per
// mnemonic with the canonical signature. A mnemonic whose canonical function
// is missing is an error, so a renamed operation cannot silently drop its
// legacy name.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

var (
	dir    = flag.String("dir", ".", "Directory of the mmx package to scan")
	output = flag.String("output", "alias.go", "Output file name, relative to -dir")
)

func main() {
	flag.Parse()

	gen := &Generator{
		Dir:    *dir,
		Output: filepath.Join(*dir, *output),
	}

	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated %s (%d bindings)\n", gen.Output, len(bindings))
}

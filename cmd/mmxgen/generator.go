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

package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"os"
	"strings"

	"golang.org/x/tools/imports"
)

// binding maps one legacy instruction mnemonic to its canonical intrinsic
// name. The table is the single source of truth for the compatibility
// surface; alias.go is derived from it.
type binding struct {
	legacy    string
	canonical string
}

var bindings = []binding{
	{"Paddb", "AddPi8"},
	{"Paddw", "AddPi16"},
	{"Paddd", "AddPi32"},
	{"Psubb", "SubPi8"},
	{"Psubw", "SubPi16"},
	{"Psubd", "SubPi32"},
	{"Paddsb", "AddsPi8"},
	{"Paddsw", "AddsPi16"},
	{"Paddusb", "AddsPu8"},
	{"Paddusw", "AddsPu16"},
	{"Psubsb", "SubsPi8"},
	{"Psubsw", "SubsPi16"},
	{"Psubusb", "SubsPu8"},
	{"Psubusw", "SubsPu16"},
	{"Pand", "AndSi64"},
	{"Pandn", "AndnotSi64"},
	{"Por", "OrSi64"},
	{"Pxor", "XorSi64"},
	{"Pcmpeqb", "CmpeqPi8"},
	{"Pcmpeqw", "CmpeqPi16"},
	{"Pcmpeqd", "CmpeqPi32"},
	{"Pcmpgtb", "CmpgtPi8"},
	{"Pcmpgtw", "CmpgtPi16"},
	{"Pcmpgtd", "CmpgtPi32"},
	{"Pmulhw", "MulhiPi16"},
	{"Pmullw", "MulloPi16"},
	{"Pmaddwd", "MaddPi16"},
	{"Packsswb", "PacksPi16"},
	{"Packssdw", "PacksPi32"},
	{"Packuswb", "PacksPu16"},
	{"Punpcklbw", "UnpackloPi8"},
	{"Punpcklwd", "UnpackloPi16"},
	{"Punpckldq", "UnpackloPi32"},
	{"Punpckhbw", "UnpackhiPi8"},
	{"Punpckhwd", "UnpackhiPi16"},
	{"Punpckhdq", "UnpackhiPi32"},
	{"Psllw", "SllPi16"},
	{"Pslld", "SllPi32"},
	{"Psllq", "SllSi64"},
	{"Psrlw", "SrlPi16"},
	{"Psrld", "SrlPi32"},
	{"Psrlq", "SrlSi64"},
	{"Psraw", "SraPi16"},
	{"Psrad", "SraPi32"},
	{"Psllwi", "SlliPi16"},
	{"Pslldi", "SlliPi32"},
	{"Psllqi", "SlliSi64"},
	{"Psrlwi", "SrliPi16"},
	{"Psrldi", "SrliPi32"},
	{"Psrlqi", "SrliSi64"},
	{"Psrawi", "SraiPi16"},
	{"Psradi", "SraiPi32"},
	{"FromInt64", "Cvtsi64M64"},
	{"ToInt64", "Cvtm64Si64"},
	{"FromInt", "Cvtsi32Si64"},
	{"ToInt", "Cvtsi64Si32"},
	{"MEmpty", "Empty"},
}

// Generator scans one package directory and emits the alias file.
type Generator struct {
	Dir    string
	Output string
}

// Run parses the package, resolves every binding against the canonical
// declarations, and writes the formatted alias file.
func (g *Generator) Run() error {
	decls, pkgName, err := g.parseCanonical()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by mmxgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkgName)
	fmt.Fprintf(&buf, "// Legacy instruction-mnemonic names. Calling code predating the intrinsic\n")
	fmt.Fprintf(&buf, "// naming convention links against these; each is a binding to the one\n")
	fmt.Fprintf(&buf, "// canonical implementation, never a second copy of the logic.\n")
	fmt.Fprintf(&buf, "//\n")
	fmt.Fprintf(&buf, "// Regenerate with: go run github.com/janpfeifer/go-mmx/cmd/mmxgen -dir .\n\n")

	fset := token.NewFileSet()
	for _, b := range bindings {
		decl, ok := decls[b.canonical]
		if !ok {
			return fmt.Errorf("binding %s: canonical function %s not found in %s", b.legacy, b.canonical, g.Dir)
		}
		if err := emitBinding(&buf, fset, b, decl); err != nil {
			return fmt.Errorf("binding %s: %w", b.legacy, err)
		}
	}

	// imports.Process both formats and prunes, so the output needs no
	// goimports pass afterwards.
	formatted, err := imports.Process(g.Output, buf.Bytes(), nil)
	if err != nil {
		return fmt.Errorf("formatting %s: %w", g.Output, err)
	}

	if err := os.WriteFile(g.Output, formatted, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", g.Output, err)
	}
	return nil
}

// parseCanonical collects the top-level function declarations of the package,
// skipping test files and the generated output itself.
func (g *Generator) parseCanonical() (map[string]*ast.FuncDecl, string, error) {
	fset := token.NewFileSet()
	outBase := lastPathElement(g.Output)
	pkgs, err := parser.ParseDir(fset, g.Dir, func(fi os.FileInfo) bool {
		return !strings.HasSuffix(fi.Name(), "_test.go") && fi.Name() != outBase
	}, 0)
	if err != nil {
		return nil, "", fmt.Errorf("parsing %s: %w", g.Dir, err)
	}
	if len(pkgs) != 1 {
		return nil, "", fmt.Errorf("expected one package in %s, found %d", g.Dir, len(pkgs))
	}

	decls := make(map[string]*ast.FuncDecl)
	var pkgName string
	for name, pkg := range pkgs {
		pkgName = name
		for _, file := range pkg.Files {
			for fname, fd := range collectFuncDecls(file) {
				decls[fname] = fd
			}
		}
	}
	return decls, pkgName, nil
}

// collectFuncDecls indexes the top-level functions of one file by name.
// Methods are skipped; canonical operations are always package functions.
func collectFuncDecls(file *ast.File) map[string]*ast.FuncDecl {
	decls := make(map[string]*ast.FuncDecl)
	for _, d := range file.Decls {
		if fd, ok := d.(*ast.FuncDecl); ok && fd.Recv == nil {
			decls[fd.Name.Name] = fd
		}
	}
	return decls
}

// emitBinding writes one wrapper function whose signature is copied verbatim
// from the canonical declaration.
func emitBinding(buf *bytes.Buffer, fset *token.FileSet, b binding, decl *ast.FuncDecl) error {
	params, err := printNode(fset, decl.Type.Params)
	if err != nil {
		return err
	}

	results := ""
	if decl.Type.Results != nil {
		// A single unnamed result prints bare, the way it is written by hand.
		if list := decl.Type.Results.List; len(list) == 1 && len(list[0].Names) == 0 {
			results, err = printNode(fset, list[0].Type)
		} else {
			results, err = printNode(fset, decl.Type.Results)
		}
		if err != nil {
			return err
		}
		results = " " + results
	}

	args := strings.Join(paramNames(decl.Type.Params), ", ")

	fmt.Fprintf(buf, "// %s is the legacy name for %s.\n", b.legacy, b.canonical)
	if decl.Type.Results != nil {
		fmt.Fprintf(buf, "func %s%s%s { return %s(%s) }\n\n", b.legacy, params, results, b.canonical, args)
	} else {
		fmt.Fprintf(buf, "func %s%s { %s(%s) }\n\n", b.legacy, params, b.canonical, args)
	}
	return nil
}

func printNode(fset *token.FileSet, node any) (string, error) {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, fset, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func paramNames(params *ast.FieldList) []string {
	var names []string
	for _, field := range params.List {
		for _, name := range field.Names {
			names = append(names, name.Name)
		}
	}
	return names
}

func lastPathElement(p string) string {
	if i := strings.LastIndexByte(p, '/'); i >= 0 {
		return p[i+1:]
	}
	return p
}

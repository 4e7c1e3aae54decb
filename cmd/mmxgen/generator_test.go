package main

import (
	"bytes"
	"go/parser"
	"go/token"
	"strings"
	"testing"
)

func TestBindingTableHasNoDuplicates(t *testing.T) {
	seen := make(map[string]string)
	for _, b := range bindings {
		if prev, ok := seen[b.legacy]; ok {
			t.Errorf("legacy name %s bound to both %s and %s", b.legacy, prev, b.canonical)
		}
		seen[b.legacy] = b.canonical
	}
}

func TestEmitBinding(t *testing.T) {
	src := `package mmx

type M64 uint64

func AddPi16(a, b M64) M64 { return 0 }

func SlliPi16(a M64, count int) M64 { return 0 }

func Empty() {}
`
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "mmx.go", src, 0)
	if err != nil {
		t.Fatalf("parsing fixture: %v", err)
	}

	decls := collectFuncDecls(file)

	cases := []struct {
		binding binding
		want    string
	}{
		{
			binding{"Paddw", "AddPi16"},
			"func Paddw(a, b M64) M64 { return AddPi16(a, b) }",
		},
		{
			binding{"Psllwi", "SlliPi16"},
			"func Psllwi(a M64, count int) M64 { return SlliPi16(a, count) }",
		},
		{
			binding{"MEmpty", "Empty"},
			"func MEmpty() { Empty() }",
		},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		if err := emitBinding(&buf, fset, tc.binding, decls[tc.binding.canonical]); err != nil {
			t.Fatalf("emitBinding(%s): %v", tc.binding.legacy, err)
		}
		if !strings.Contains(buf.String(), tc.want) {
			t.Errorf("emitBinding(%s):\ngot:\n%s\nwant it to contain:\n%s", tc.binding.legacy, buf.String(), tc.want)
		}
		wantDoc := "// " + tc.binding.legacy + " is the legacy name for " + tc.binding.canonical + "."
		if !strings.Contains(buf.String(), wantDoc) {
			t.Errorf("emitBinding(%s): missing doc comment %q", tc.binding.legacy, wantDoc)
		}
	}
}

func TestParamNames(t *testing.T) {
	src := `package p

func f(a, b uint64, count int) {}
`
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "p.go", src, 0)
	if err != nil {
		t.Fatalf("parsing fixture: %v", err)
	}
	decl := collectFuncDecls(file)["f"]
	got := paramNames(decl.Type.Params)
	want := []string{"a", "b", "count"}
	if len(got) != len(want) {
		t.Fatalf("paramNames: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("paramNames[%d]: got %s, want %s", i, got[i], want[i])
		}
	}
}

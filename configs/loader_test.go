package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

var testSchema = `
str?: string
list?: [...int]
`

func writeFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{
		writeFile(t, "test.cue", `
str: "bar"
list: [1, 2, 3]
`),
	}, testSchema)

	var str string
	if err := loader.AssignFirst("str", &str); err != nil {
		t.Fatal(err)
	}
	if str != "bar" {
		t.Fatalf("got %q", str)
	}

	var list []int
	if err := loader.AssignFirst("list", &list); err != nil {
		t.Fatal(err)
	}
	if s := fmt.Sprintf("%v", list); s != "[1 2 3]" {
		t.Fatalf("got %s", s)
	}

	err := loader.AssignFirst("not", &list)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader([]string{
		writeFile(t, "test.cue", `str: "bar"`),
		writeFile(t, "test2.cue", `str: "foo"`),
	}, testSchema)

	var strs []string
	for value, err := range loader.IterCueValues("str") {
		if err != nil {
			t.Fatal(err)
		}
		var s string
		if err := value.Decode(&s); err != nil {
			t.Fatal(err)
		}
		strs = append(strs, s)
	}
	if s := fmt.Sprintf("%v", strs); s != "[bar foo]" {
		t.Fatalf("got %q", s)
	}

	strs = strs[:0]
	for str := range All[string](loader, "str") {
		strs = append(strs, str)
	}
	if s := fmt.Sprintf("%v", strs); s != "[bar foo]" {
		t.Fatalf("got %q", s)
	}
}

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{
		writeFile(t, "test.cue", `str: "bar"`),
	}, testSchema)

	if str := First[string](loader, "str"); str != "bar" {
		t.Fatalf("got %v", str)
	}
	if str := First[string](loader, "missing"); str != "" {
		t.Fatalf("got %v", str)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		writeFile(t, "bad.cue", `unknown_field: 1`),
	}, testSchema)

	var str string
	err := loader.AssignFirst("unknown_field", &str)
	if err == nil {
		t.Fatal("should error")
	}
}

func TestOptionsSchema(t *testing.T) {
	loader := NewLoader([]string{
		writeFile(t, "plutus.cue", `
plc: {
	startHandle: 100
	dumpTokens:  true
}
`),
	}, Schema)

	opts := First[Options](loader, "plc")
	if opts.StartHandle != 100 {
		t.Fatalf("got %+v", opts)
	}
	if !opts.DumpTokens {
		t.Fatalf("got %+v", opts)
	}
}

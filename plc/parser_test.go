package plc

import (
	"strings"
	"testing"
)

func TestParseProgram(t *testing.T) {
	tests := []struct {
		input  string
		pretty string
	}{
		{
			input:  "(program 1.0.0 (lam x x))",
			pretty: "(lam x x)",
		},
		{
			input:  "(program 1.0.0 [(lam x x) (con integer 42)])",
			pretty: "[(lam x x) (con integer 42)]",
		},
		{
			input:  "(program 1.0.0 (force (delay (error))))",
			pretty: "(force (delay (error)))",
		},
		{
			input:  "(program 1.0.0 [[(builtin addInteger) (con integer 1)] (con integer 2)])",
			pretty: "[[(builtin addInteger) (con integer 1)] (con integer 2)]",
		},
		{
			input:  `(program 1.0.0 (con string "hello"))`,
			pretty: `(con string "hello")`,
		},
		{
			input:  "(program 1.0.0 (con unit ()))",
			pretty: "(con unit ())",
		},
		{
			input:  "(program 1.0.0 (con integer -5))",
			pretty: "(con integer -5)",
		},
		{
			input:  "(program 1.0.0 (con integer))",
			pretty: "(con integer)",
		},
		{
			// n-ary application nests to the left
			input:  "(program 1.0.0 [f x y])",
			pretty: "[[f x] y]",
		},
		{
			input: `(program 1.0.0
				-- identity, twice
				[(lam x x) {- inline -} (lam y y)])`,
			pretty: "[(lam x x) (lam y y)]",
		},
	}

	for _, test := range tests {
		program, err := ParseSource(NewSource("test", test.input))
		if err != nil {
			t.Fatalf("%q: %v", test.input, err)
		}
		if got := Pretty(program.Body); got != test.pretty {
			t.Fatalf("%q: got %q", test.input, got)
		}
	}
}

func TestParseVersion(t *testing.T) {
	program, err := ParseSource(NewSource("test", "(program 12.3.456 (error))"))
	if err != nil {
		t.Fatal(err)
	}
	if program.Version.String() != "12.3.456" {
		t.Fatalf("version is %s", program.Version)
	}
	if program.String() != "(program 12.3.456 (error))" {
		t.Fatalf("rendered as %q", program.String())
	}
}

func TestParseSharedHandles(t *testing.T) {
	program, err := ParseSource(NewSource("test", "(program 1.0.0 (lam x [x x]))"))
	if err != nil {
		t.Fatal(err)
	}

	lam, ok := program.Body.(*LamAbs)
	if !ok {
		t.Fatalf("body is %T", program.Body)
	}
	apply, ok := lam.Body.(*Apply)
	if !ok {
		t.Fatalf("lam body is %T", lam.Body)
	}
	fn := apply.Fn.(*Var)
	arg := apply.Arg.(*Var)
	if fn.Handle != lam.Handle || arg.Handle != lam.Handle {
		t.Fatalf("handles differ: lam=%d fn=%d arg=%d", lam.Handle, fn.Handle, arg.Handle)
	}
}

func TestParseDistinctHandles(t *testing.T) {
	program, err := ParseSource(NewSource("test", "(program 1.0.0 (lam x (lam y [x y])))"))
	if err != nil {
		t.Fatal(err)
	}

	outer := program.Body.(*LamAbs)
	inner := outer.Body.(*LamAbs)
	if outer.Handle == inner.Handle {
		t.Fatal("distinct names share a handle")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input   string
		message string
	}{
		{"(lam x x)", "expecting keyword program"},
		{"(program 1.0 (error))", "expecting"},
		{"(program 1.0.0 (error)) extra", "trailing input"},
		{"(program 1.0.0 (abs a (error)))", "not valid in an untyped term"},
		{"(program 1.0.0 (program 1.0.0 (error)))", "nested program"},
		{"(program 1.0.0 (lam 1 x))", "expecting variable name"},
		{"(program 1.0.0 [x)", "unexpected"},
		{"(program 1.0.0 (unwrap x))", "not valid in an untyped term"},
		{"(program 1.0.0", "unexpected end of input"},
	}

	for _, test := range tests {
		_, err := ParseSource(NewSource("test", test.input))
		if err == nil {
			t.Fatalf("%q: expected error", test.input)
		}
		if !strings.Contains(err.Error(), test.message) {
			t.Fatalf("%q: error is %q", test.input, err)
		}
	}
}

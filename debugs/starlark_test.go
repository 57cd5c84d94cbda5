package debugs

import (
	"math/big"
	"testing"

	"github.com/gnumonik/plutus/plc"
	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	type testStruct struct {
		Exported   string
		unexported int
	}

	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"string", "hello", starlark.String("hello")},
		{"int", int(42), starlark.MakeInt(42)},
		{"uint32", uint32(42), starlark.MakeUint(42)},
		{"big int", big.NewInt(7), starlark.MakeInt(7)},
		{"nil big int", (*big.Int)(nil), starlark.None},
		{"unique handle", plc.Unique(3), starlark.MakeInt(3)},
		{"keyword renders", plc.KwLam, starlark.String("lam")},
		{"slice", []int{1, 2}, starlark.NewList([]starlark.Value{
			starlark.MakeInt(1), starlark.MakeInt(2),
		})},
		{"map", map[string]int{"a": 1}, func() starlark.Value {
			d := starlark.NewDict(1)
			d.SetKey(starlark.String("a"), starlark.MakeInt(1))
			return d
		}()},
		{"struct", testStruct{Exported: "hi", unexported: 1}, func() starlark.Value {
			d := starlark.NewDict(1)
			d.SetKey(starlark.String("Exported"), starlark.String("hi"))
			return d
		}()},
		{"nil pointer", (*testStruct)(nil), starlark.None},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := toStarlarkValue(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("toStarlarkValue(%#v) = %v, want %v", tc.input, actual, tc.expected)
			}
		})
	}

	t.Run("panic on unsupported type", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("no panic on unsupported type")
			}
		}()
		toStarlarkValue(make(chan bool))
	})
}

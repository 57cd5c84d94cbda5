package plc

import (
	"math/big"
	"testing"
)

func TestTokenStringTotality(t *testing.T) {
	tokens := []*Token{
		{Kind: TokenEOF},
		{Kind: TokenName, Text: "x", Name: 0},
		{Kind: TokenBuiltinFn, Text: "addInteger"},
		{Kind: TokenBuiltinType, Text: "integer"},
		{Kind: TokenConArgs, Text: "integer", Shape: ShapeBare},
		{Kind: TokenKeyword, Keyword: KwLam},
		{Kind: TokenLiteralConst, Shape: ShapeDoubleQuoted, Text: "hi"},
		{Kind: TokenNatural, Nat: big.NewInt(42)},
		{Kind: TokenNatural},
		{Kind: TokenSpecial, Special: OpenBracket},
	}

	for _, tok := range tokens {
		// must not panic, whatever the payload
		_ = tok.String()
	}

	if (&Token{Kind: TokenEOF}).String() != "" {
		t.Fatal("EOF must render empty")
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		token Token
		want  string
	}{
		{Token{Kind: TokenName, Text: "x", Name: 3}, "x"},
		{Token{Kind: TokenKeyword, Keyword: KwProgram}, "program"},
		{Token{Kind: TokenLiteralConst, Shape: ShapeParens}, "()"},
		{Token{Kind: TokenLiteralConst, Shape: ShapeSingleQuoted, Text: "a"}, "'a'"},
		{Token{Kind: TokenLiteralConst, Shape: ShapeDoubleQuoted, Text: "hi"}, `"hi"`},
		{Token{Kind: TokenLiteralConst, Shape: ShapeBare, Text: "42"}, "42"},
		{Token{Kind: TokenNatural, Nat: big.NewInt(7)}, "7"},
		{Token{Kind: TokenSpecial, Special: Dot}, "."},
		{Token{Kind: TokenBuiltinFn, Text: "ifThenElse"}, "ifThenElse"},
	}

	for _, test := range tests {
		if got := test.token.String(); got != test.want {
			t.Fatalf("got %q, want %q", got, test.want)
		}
	}
}

func TestTokenKindStringTotality(t *testing.T) {
	kinds := []TokenKind{
		TokenEOF, TokenName, TokenBuiltinFn, TokenBuiltinType,
		TokenConArgs, TokenKeyword, TokenLiteralConst, TokenNatural,
		TokenSpecial,
	}
	seen := make(map[string]bool)
	for _, k := range kinds {
		s := k.String()
		if s == "" || seen[s] {
			t.Fatalf("bad kind rendering %q", s)
		}
		seen[s] = true
	}
}

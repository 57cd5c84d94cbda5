package plc

import (
	"fmt"
	"math/big"
)

type TokenKind uint8

const (
	TokenEOF TokenKind = iota
	TokenName
	TokenBuiltinFn
	TokenBuiltinType
	TokenConArgs
	TokenKeyword
	TokenLiteralConst
	TokenNatural
	TokenSpecial
)

func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "EOF"
	case TokenName:
		return "name"
	case TokenBuiltinFn:
		return "builtin-fn"
	case TokenBuiltinType:
		return "builtin-type"
	case TokenConArgs:
		return "con-args"
	case TokenKeyword:
		return "keyword"
	case TokenLiteralConst:
		return "literal-const"
	case TokenNatural:
		return "natural"
	case TokenSpecial:
		return "special"
	}
	panic(fmt.Errorf("unknown token kind: %d", uint8(k)))
}

// Special is the punctuation of the concrete syntax.
type Special uint8

const (
	OpenParen Special = iota
	CloseParen
	OpenBracket
	CloseBracket
	Dot
)

func (s Special) String() string {
	switch s {
	case OpenParen:
		return "("
	case CloseParen:
		return ")"
	case OpenBracket:
		return "["
	case CloseBracket:
		return "]"
	case Dot:
		return "."
	}
	panic(fmt.Errorf("unknown special: %d", uint8(s)))
}

// Token is one lexical item. Kind selects the variant; the payload fields
// beyond the variant's own are zero. Tokens are immutable once produced.
//
//   - TokenName: Text is the spelling, Name the interned handle.
//   - TokenBuiltinFn, TokenBuiltinType: Text is the id.
//   - TokenConArgs: Text is the builtin type name, Shape the shape of the
//     literal body that follows.
//   - TokenKeyword: Keyword.
//   - TokenLiteralConst: Shape plus the raw, uninterpreted body in Text.
//   - TokenNatural: Nat, arbitrary precision, never negative.
//   - TokenSpecial: Special.
//   - TokenEOF: no payload.
type Token struct {
	Kind    TokenKind
	Pos     Pos
	Text    string
	Name    Unique
	Keyword Keyword
	Shape   ConstShape
	Nat     *big.Int
	Special Special
}

// String renders the token roughly as it appeared in the source. EOF renders
// as the empty string.
func (t *Token) String() string {
	switch t.Kind {
	case TokenEOF:
		return ""
	case TokenName, TokenBuiltinFn, TokenBuiltinType:
		return t.Text
	case TokenConArgs:
		return t.Text
	case TokenKeyword:
		return t.Keyword.String()
	case TokenLiteralConst:
		return t.Shape.render(t.Text)
	case TokenNatural:
		if t.Nat == nil {
			return "0"
		}
		return t.Nat.String()
	case TokenSpecial:
		return t.Special.String()
	}
	panic(fmt.Errorf("unknown token kind: %d", uint8(t.Kind)))
}

package plc

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math/big"
	"strings"
	"unicode"
)

// Lexer turns one Source into a token stream. It owns the session's
// IdentifierState: every name-shaped lexeme is interned exactly once, so
// repeated spellings carry the same handle. Strictly sequential; not safe
// for concurrent use.
type Lexer struct {
	source  *bufio.Reader
	src     *Source
	idents  *IdentifierState
	current *Token
	pending *Token

	// con and builtin put the scanner into a mode where the following
	// lexeme is classified differently.
	afterCon     bool
	afterBuiltin bool

	currPos Pos
	prevPos Pos
}

// NewLexer starts a fresh session with handle allocation from 0.
func NewLexer(src *Source) *Lexer {
	return NewLexerFrom(src, 0)
}

// NewLexerFrom starts a session whose handle allocation continues from
// start. See IdentifierStateFrom for the caller's obligation.
func NewLexerFrom(src *Source, start Unique) *Lexer {
	return &Lexer{
		source: bufio.NewReader(strings.NewReader(src.Content)),
		src:    src,
		idents: IdentifierStateFrom(start),
		currPos: Pos{
			Source: src,
			Line:   1,
			Column: 1,
		},
	}
}

// Identifiers exposes the session's interning state, e.g. to continue
// allocation in a follow-on session via Next.
func (l *Lexer) Identifiers() *IdentifierState {
	return l.idents
}

func (l *Lexer) readRune() (rune, error) {
	r, _, err := l.source.ReadRune()
	if err != nil {
		return 0, err
	}

	l.prevPos = l.currPos
	if r == '\n' {
		l.currPos.Line++
		l.currPos.Column = 1
	} else {
		l.currPos.Column++
	}

	return r, nil
}

func (l *Lexer) unreadRune() {
	l.source.UnreadRune()
	l.currPos = l.prevPos
}

// Current returns the token at the head of the stream without consuming it.
func (l *Lexer) Current() (*Token, error) {
	if l.current == nil {
		var err error
		l.current, err = l.parseNext()
		if err != nil {
			return nil, err
		}
	}
	return l.current, nil
}

func (l *Lexer) Consume() {
	l.current = nil
}

// Next consumes and returns the head token.
func (l *Lexer) Next() (*Token, error) {
	tok, err := l.Current()
	if err != nil {
		return nil, err
	}
	l.Consume()
	return tok, nil
}

// Tokens drains the stream, including the final EOF token.
func (l *Lexer) Tokens() ([]*Token, error) {
	var tokens []*Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) parseNext() (*Token, error) {
	if tok := l.pending; tok != nil {
		l.pending = nil
		return tok, nil
	}

	if err := l.skipSpaceAndComments(); err != nil {
		return nil, err
	}

	if l.afterCon {
		l.afterCon = false
		return l.lexConArgs()
	}

	startPos := l.currPos

	r, err := l.readRune()
	if err == io.EOF {
		return &Token{Kind: TokenEOF, Pos: startPos}, nil
	}
	if err != nil {
		return nil, err
	}

	// a builtin keyword only classifies the directly following word
	if !isNameStart(r) {
		l.afterBuiltin = false
	}

	switch r {
	case '(':
		return &Token{Kind: TokenSpecial, Special: OpenParen, Pos: startPos}, nil
	case ')':
		return &Token{Kind: TokenSpecial, Special: CloseParen, Pos: startPos}, nil
	case '[':
		return &Token{Kind: TokenSpecial, Special: OpenBracket, Pos: startPos}, nil
	case ']':
		return &Token{Kind: TokenSpecial, Special: CloseBracket, Pos: startPos}, nil
	case '.':
		return &Token{Kind: TokenSpecial, Special: Dot, Pos: startPos}, nil
	}

	if unicode.IsDigit(r) {
		l.unreadRune()
		return l.lexNatural(startPos)
	}

	if isNameStart(r) {
		l.unreadRune()
		return l.lexWord(startPos)
	}

	return nil, WithPos(fmt.Errorf("unexpected character %q", r), startPos)
}

func (l *Lexer) skipSpaceAndComments() error {
	for {
		r, err := l.readRune()
		if err != nil {
			return nil
		}

		switch {
		case unicode.IsSpace(r):

		case r == '-':
			pos := l.prevPos
			next, err := l.readRune()
			if err != nil || next != '-' {
				return WithPos(fmt.Errorf("unexpected character %q", r), pos)
			}
			l.skipLineComment()

		case r == '{':
			pos := l.prevPos
			next, err := l.readRune()
			if err != nil || next != '-' {
				return WithPos(fmt.Errorf("unexpected character %q", r), pos)
			}
			if err := l.skipBlockComment(pos); err != nil {
				return err
			}

		default:
			l.unreadRune()
			return nil
		}
	}
}

// skipToConBody is skipSpaceAndComments for the gap between a con type
// name and its body, where a lone - opens a signed bare body rather than
// being a stray character. -- still starts a line comment. Reports whether
// a leading minus was consumed, and where it was.
func (l *Lexer) skipToConBody() (minus bool, minusPos Pos, err error) {
	for {
		r, rerr := l.readRune()
		if rerr != nil {
			return false, Pos{}, nil
		}

		switch {
		case unicode.IsSpace(r):

		case r == '-':
			pos := l.prevPos
			next, rerr := l.readRune()
			if rerr == nil && next == '-' {
				l.skipLineComment()
				continue
			}
			if rerr == nil {
				l.unreadRune()
			}
			return true, pos, nil

		case r == '{':
			pos := l.prevPos
			next, rerr := l.readRune()
			if rerr != nil || next != '-' {
				return false, Pos{}, WithPos(fmt.Errorf("unexpected character %q", r), pos)
			}
			if err := l.skipBlockComment(pos); err != nil {
				return false, Pos{}, err
			}

		default:
			l.unreadRune()
			return false, Pos{}, nil
		}
	}
}

func (l *Lexer) skipLineComment() {
	for {
		r, err := l.readRune()
		if err != nil || r == '\n' {
			return
		}
	}
}

// skipBlockComment consumes a {- -} comment, which may nest.
func (l *Lexer) skipBlockComment(openPos Pos) error {
	depth := 1
	for depth > 0 {
		r, err := l.readRune()
		if err != nil {
			return WithPos(fmt.Errorf("unterminated block comment"), openPos)
		}
		switch r {
		case '{':
			next, err := l.readRune()
			if err != nil {
				return WithPos(fmt.Errorf("unterminated block comment"), openPos)
			}
			if next == '-' {
				depth++
			} else {
				l.unreadRune()
			}
		case '-':
			next, err := l.readRune()
			if err != nil {
				return WithPos(fmt.Errorf("unterminated block comment"), openPos)
			}
			if next == '}' {
				depth--
			} else {
				l.unreadRune()
			}
		}
	}
	return nil
}

func (l *Lexer) lexNatural(startPos Pos) (*Token, error) {
	var buf bytes.Buffer
	for {
		r, err := l.readRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if !unicode.IsDigit(r) {
			l.unreadRune()
			break
		}
		buf.WriteRune(r)
	}

	nat, ok := new(big.Int).SetString(buf.String(), 10)
	if !ok {
		return nil, WithPos(fmt.Errorf("malformed natural %q", buf.String()), startPos)
	}
	return &Token{Kind: TokenNatural, Nat: nat, Pos: startPos}, nil
}

func (l *Lexer) lexWord(startPos Pos) (*Token, error) {
	text, err := l.readName()
	if err != nil {
		return nil, err
	}

	if kw, ok := KeywordByName(text); ok {
		switch kw {
		case KwCon:
			l.afterCon = true
		case KwBuiltin:
			l.afterBuiltin = true
		}
		return &Token{Kind: TokenKeyword, Keyword: kw, Pos: startPos}, nil
	}

	if l.afterBuiltin {
		l.afterBuiltin = false
		return &Token{Kind: TokenBuiltinFn, Text: text, Pos: startPos}, nil
	}

	return &Token{
		Kind: TokenName,
		Text: text,
		Name: l.idents.Intern(text),
		Pos:  startPos,
	}, nil
}

// lexConArgs classifies what follows a con keyword: a builtin type name,
// then either a close paren (type-level con, no body) or a literal-constant
// body whose shape tags both the con-args token and the queued literal
// token.
func (l *Lexer) lexConArgs() (*Token, error) {
	namePos := l.currPos
	r, err := l.readRune()
	if err != nil || !isNameStart(r) {
		return nil, WithPos(fmt.Errorf("expecting builtin type name after con"), namePos)
	}
	l.unreadRune()
	tyName, err := l.readName()
	if err != nil {
		return nil, err
	}

	minus, minusPos, err := l.skipToConBody()
	if err != nil {
		return nil, err
	}
	if minus {
		body, err := l.lexBareBody()
		if err != nil {
			return nil, err
		}
		l.pending = &Token{
			Kind:  TokenLiteralConst,
			Shape: ShapeBare,
			Text:  "-" + body,
			Pos:   minusPos,
		}
		return &Token{
			Kind:  TokenConArgs,
			Text:  tyName,
			Shape: ShapeBare,
			Pos:   namePos,
		}, nil
	}

	bodyPos := l.currPos
	r, err = l.readRune()
	if err == io.EOF {
		return nil, WithPos(fmt.Errorf("expecting literal constant after con %s", tyName), bodyPos)
	}
	if err != nil {
		return nil, err
	}

	var shape ConstShape
	var body string
	switch {
	case r == ')' || r == ']':
		// type-level con: no literal body follows
		l.unreadRune()
		return &Token{Kind: TokenBuiltinType, Text: tyName, Pos: namePos}, nil

	case r == '(':
		next, err := l.readRune()
		if err != nil || next != ')' {
			return nil, WithPos(fmt.Errorf("expecting ) to close empty constant body"), bodyPos)
		}
		shape = ShapeParens

	case r == '\'':
		shape = ShapeSingleQuoted
		body, err = l.lexQuotedBody('\'', bodyPos)
		if err != nil {
			return nil, err
		}

	case r == '"':
		shape = ShapeDoubleQuoted
		body, err = l.lexQuotedBody('"', bodyPos)
		if err != nil {
			return nil, err
		}

	default:
		l.unreadRune()
		shape = ShapeBare
		body, err = l.lexBareBody()
		if err != nil {
			return nil, err
		}
	}

	l.pending = &Token{
		Kind:  TokenLiteralConst,
		Shape: shape,
		Text:  body,
		Pos:   bodyPos,
	}
	return &Token{
		Kind:  TokenConArgs,
		Text:  tyName,
		Shape: shape,
		Pos:   namePos,
	}, nil
}

// lexQuotedBody captures the raw body up to the closing quote. Escape
// sequences are kept verbatim; interpreting them is the job of the
// type-specific constant parser.
func (l *Lexer) lexQuotedBody(quote rune, startPos Pos) (string, error) {
	var buf bytes.Buffer
	for {
		r, err := l.readRune()
		if err != nil || r == '\n' {
			return "", WithPos(fmt.Errorf("unterminated constant body"), startPos)
		}
		if r == quote {
			return buf.String(), nil
		}
		if r == '\\' {
			buf.WriteRune(r)
			r, err = l.readRune()
			if err != nil {
				return "", WithPos(fmt.Errorf("unterminated constant body"), startPos)
			}
			buf.WriteRune(r)
			continue
		}
		if !unicode.IsGraphic(r) && r != '\t' {
			return "", WithPos(fmt.Errorf("non-printable character %q in constant body", r), l.prevPos)
		}
		buf.WriteRune(r)
	}
}

func (l *Lexer) lexBareBody() (string, error) {
	var buf bytes.Buffer
	for {
		r, err := l.readRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if unicode.IsSpace(r) || r == ')' || r == ']' {
			l.unreadRune()
			break
		}
		buf.WriteRune(r)
	}
	return buf.String(), nil
}

func (l *Lexer) readName() (string, error) {
	var buf bytes.Buffer
	for {
		r, err := l.readRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if !isNameChar(r) {
			l.unreadRune()
			break
		}
		buf.WriteRune(r)
	}
	return buf.String(), nil
}

func isNameStart(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

func isNameChar(r rune) bool {
	return isNameStart(r) || r >= '0' && r <= '9' || r == '_' || r == '\''
}

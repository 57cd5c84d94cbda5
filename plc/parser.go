package plc

import (
	"fmt"
	"math/big"
)

// Parser builds terms from a lexer's token stream by recursive descent.
type Parser struct {
	lexer *Lexer
}

func NewParser(lexer *Lexer) *Parser {
	return &Parser{
		lexer: lexer,
	}
}

// ParseSource lexes and parses one source as a whole program.
func ParseSource(src *Source) (*Program, error) {
	return NewParser(NewLexer(src)).ParseProgram()
}

// ParseProgram parses (program N.N.N term) followed by end of input.
func (p *Parser) ParseProgram() (*Program, error) {
	openPos, err := p.expectSpecial(OpenParen)
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword(KwProgram); err != nil {
		return nil, err
	}

	version, err := p.parseVersion()
	if err != nil {
		return nil, err
	}

	body, err := p.ParseTerm()
	if err != nil {
		return nil, err
	}

	if _, err := p.expectSpecial(CloseParen); err != nil {
		return nil, err
	}

	tok, err := p.lexer.Current()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokenEOF {
		return nil, WithPos(fmt.Errorf("trailing input after program"), tok.Pos)
	}

	return &Program{
		At:      openPos,
		Version: version,
		Body:    body,
	}, nil
}

func (p *Parser) parseVersion() (Version, error) {
	major, err := p.expectNatural()
	if err != nil {
		return Version{}, err
	}
	if _, err := p.expectSpecial(Dot); err != nil {
		return Version{}, err
	}
	minor, err := p.expectNatural()
	if err != nil {
		return Version{}, err
	}
	if _, err := p.expectSpecial(Dot); err != nil {
		return Version{}, err
	}
	patch, err := p.expectNatural()
	if err != nil {
		return Version{}, err
	}
	return Version{
		Major: major,
		Minor: minor,
		Patch: patch,
	}, nil
}

// ParseTerm parses one term. Dispatch is exhaustive over the token kinds the
// grammar allows in term position.
func (p *Parser) ParseTerm() (Term, error) {
	tok, err := p.lexer.Next()
	if err != nil {
		return nil, err
	}

	switch tok.Kind {

	case TokenName:
		return &Var{
			At:     tok.Pos,
			Name:   tok.Text,
			Handle: tok.Name,
		}, nil

	case TokenSpecial:
		switch tok.Special {
		case OpenParen:
			return p.parseParenTerm(tok.Pos)
		case OpenBracket:
			return p.parseApplication(tok.Pos)
		}
		return nil, WithPos(fmt.Errorf("unexpected %q", tok.Special.String()), tok.Pos)

	case TokenEOF:
		return nil, WithPos(fmt.Errorf("unexpected end of input"), tok.Pos)

	case TokenKeyword, TokenBuiltinFn, TokenBuiltinType,
		TokenConArgs, TokenLiteralConst, TokenNatural:
		return nil, WithPos(fmt.Errorf("unexpected %s", tok.Kind), tok.Pos)
	}

	return nil, WithPos(fmt.Errorf("unexpected %s", tok.Kind), tok.Pos)
}

func (p *Parser) parseParenTerm(openPos Pos) (Term, error) {
	tok, err := p.lexer.Next()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokenKeyword {
		return nil, WithPos(fmt.Errorf("expecting keyword, got %s", tok.Kind), tok.Pos)
	}

	var term Term
	switch tok.Keyword {

	case KwLam:
		name, err := p.lexer.Next()
		if err != nil {
			return nil, err
		}
		if name.Kind != TokenName {
			return nil, WithPos(fmt.Errorf("expecting variable name, got %s", name.Kind), name.Pos)
		}
		body, err := p.ParseTerm()
		if err != nil {
			return nil, err
		}
		term = &LamAbs{
			At:     openPos,
			Name:   name.Text,
			Handle: name.Name,
			Body:   body,
		}

	case KwCon:
		head, err := p.lexer.Next()
		if err != nil {
			return nil, err
		}
		switch head.Kind {
		case TokenConArgs:
			body, err := p.lexer.Next()
			if err != nil {
				return nil, err
			}
			if body.Kind != TokenLiteralConst {
				return nil, WithPos(fmt.Errorf("expecting literal constant, got %s", body.Kind), body.Pos)
			}
			term = &Con{
				At:     openPos,
				TyName: head.Text,
				Shape:  body.Shape,
				Body:   body.Text,
			}
		case TokenBuiltinType:
			term = &ConTy{
				At:     openPos,
				TyName: head.Text,
			}
		default:
			return nil, WithPos(fmt.Errorf("expecting builtin type name, got %s", head.Kind), head.Pos)
		}

	case KwBuiltin:
		id, err := p.lexer.Next()
		if err != nil {
			return nil, err
		}
		if id.Kind != TokenBuiltinFn {
			return nil, WithPos(fmt.Errorf("expecting builtin function id, got %s", id.Kind), id.Pos)
		}
		term = &Builtin{
			At:   openPos,
			Name: id.Text,
		}

	case KwError:
		term = &ErrorTerm{
			At: openPos,
		}

	case KwForce:
		body, err := p.ParseTerm()
		if err != nil {
			return nil, err
		}
		term = &Force{
			At:   openPos,
			Body: body,
		}

	case KwDelay:
		body, err := p.ParseTerm()
		if err != nil {
			return nil, err
		}
		term = &Delay{
			At:   openPos,
			Body: body,
		}

	case KwAbs, KwIfix, KwFun, KwAll, KwType, KwIwrap, KwUnwrap:
		return nil, WithPos(fmt.Errorf("keyword %s is not valid in an untyped term", tok.Keyword), tok.Pos)

	case KwProgram:
		return nil, WithPos(fmt.Errorf("nested program"), tok.Pos)

	default:
		return nil, WithPos(fmt.Errorf("unexpected keyword %s", tok.Keyword), tok.Pos)
	}

	if _, err := p.expectSpecial(CloseParen); err != nil {
		return nil, err
	}
	return term, nil
}

func (p *Parser) parseApplication(openPos Pos) (Term, error) {
	fn, err := p.ParseTerm()
	if err != nil {
		return nil, err
	}
	arg, err := p.ParseTerm()
	if err != nil {
		return nil, err
	}
	term := &Apply{
		At:  openPos,
		Fn:  fn,
		Arg: arg,
	}

	// [f x y] sugar: applications nest to the left
	for {
		tok, err := p.lexer.Current()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokenSpecial && tok.Special == CloseBracket {
			p.lexer.Consume()
			return term, nil
		}
		arg, err := p.ParseTerm()
		if err != nil {
			return nil, err
		}
		term = &Apply{
			At:  openPos,
			Fn:  term,
			Arg: arg,
		}
	}
}

func (p *Parser) expectSpecial(want Special) (Pos, error) {
	tok, err := p.lexer.Next()
	if err != nil {
		return Pos{}, err
	}
	if tok.Kind != TokenSpecial || tok.Special != want {
		return Pos{}, WithPos(fmt.Errorf("expecting %q", want.String()), tok.Pos)
	}
	return tok.Pos, nil
}

func (p *Parser) expectKeyword(want Keyword) error {
	tok, err := p.lexer.Next()
	if err != nil {
		return err
	}
	if tok.Kind != TokenKeyword || tok.Keyword != want {
		return WithPos(fmt.Errorf("expecting keyword %s", want), tok.Pos)
	}
	return nil
}

func (p *Parser) expectNatural() (*big.Int, error) {
	tok, err := p.lexer.Next()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokenNatural {
		return nil, WithPos(fmt.Errorf("expecting natural number, got %s", tok.Kind), tok.Pos)
	}
	return tok.Nat, nil
}

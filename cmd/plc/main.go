package main

import (
	"context"
	"os"

	"github.com/gnumonik/plutus/cmds"
	"github.com/gnumonik/plutus/configs"
	"github.com/gnumonik/plutus/debugs"
	"github.com/gnumonik/plutus/logs"
	"github.com/gnumonik/plutus/modes"
	"github.com/gnumonik/plutus/plc"
	"github.com/gnumonik/plutus/vars"
	"github.com/reusee/dscope"
)

var startFlag = cmds.Var[int]("-start")

func main() {
	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(defineCommands)

	ce(cmds.Execute(os.Args[1:]))
}

func defineCommands(
	logger logs.Logger,
	newSpan logs.NewSpan,
	options configs.Options,
	tap debugs.Tap,
) {

	startHandle := func() plc.Unique {
		return plc.Unique(vars.FirstNonZero(*startFlag, options.StartHandle))
	}

	lexFile := func(ctx context.Context, path string) (*plc.Lexer, error) {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, logs.WrapSpan(ctx, err)
		}
		start := startHandle()
		logger.InfoContext(ctx, "lexing",
			"path", path,
			"start", start,
		)
		return plc.NewLexerFrom(plc.NewSource(path, string(content)), start), nil
	}

	cmds.Define("print", cmds.Func(func(path string) error {
		ctx, _ := newSpan(context.Background(), "print "+path)

		lexer, err := lexFile(ctx, path)
		if err != nil {
			return err
		}
		program, err := plc.NewParser(lexer).ParseProgram()
		if err != nil {
			return logs.WrapSpan(ctx, err)
		}

		if options.DumpTokens {
			logger.InfoContext(ctx, "interned",
				"identifiers", len(lexer.Identifiers().Table()),
				"next", lexer.Identifiers().Next(),
			)
		}
		pt("%s\n", program)
		return nil
	}).Desc("parse a source file and print it back"))

	cmds.Define("tokens", cmds.Func(func(path string) error {
		ctx, _ := newSpan(context.Background(), "tokens "+path)

		lexer, err := lexFile(ctx, path)
		if err != nil {
			return err
		}
		tokens, err := lexer.Tokens()
		if err != nil {
			return logs.WrapSpan(ctx, err)
		}

		for _, tok := range tokens {
			if tok.Kind == plc.TokenName {
				pt("%s\t%s\t%s\t#%d\n", tok.Pos, tok.Kind, tok, tok.Name)
			} else {
				pt("%s\t%s\t%s\n", tok.Pos, tok.Kind, tok)
			}
		}
		return nil
	}).Desc("dump the token stream with positions and handles"))

	cmds.Define("tap", cmds.Func(func(path string) error {
		ctx, _ := newSpan(context.Background(), "tap "+path)

		lexer, err := lexFile(ctx, path)
		if err != nil {
			return err
		}
		tokens, err := lexer.Tokens()
		if err != nil {
			return logs.WrapSpan(ctx, err)
		}

		var tokenDicts []any
		for _, tok := range tokens {
			dict := map[string]any{
				"kind": tok.Kind,
				"text": tok.String(),
				"pos":  tok.Pos,
			}
			if tok.Kind == plc.TokenName {
				dict["handle"] = tok.Name
			}
			tokenDicts = append(tokenDicts, dict)
		}

		tap(ctx, "lex session "+path, map[string]any{
			"tokens":      tokenDicts,
			"identifiers": lexer.Identifiers().Table(),
			"next":        lexer.Identifiers().Next(),
		})
		return nil
	}).Desc("lex a file then inspect the session from a starlark prompt"))
}

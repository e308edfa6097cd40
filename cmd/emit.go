package main

import (
	"fmt"
	"io"
	"os"

	codegen "github.com/gluax-lang/dpp/backend"
	"github.com/gluax-lang/dpp/compiler"
	"github.com/gluax-lang/dpp/frontend/ast"
)

type EmitCmd struct {
	File     string   `arg:"" help:"Source file." type:"existingfile"`
	Stage    string   `help:"Stage to print." enum:"tokens,ast,symbols,ir,asm" default:"asm" short:"s"`
	Fold     bool     `help:"Fold constant expressions."`
	Keywords []string `help:"Extra reserved words." sep:","`
}

func (e *EmitCmd) Run() error {
	code, err := os.ReadFile(e.File)
	if err != nil {
		return err
	}
	opts := compiler.Options{Keywords: e.Keywords, FoldConstants: e.Fold}
	res, err := compiler.Compile(e.File, string(code), opts)
	if printed := emit(os.Stdout, res, e.Stage); !printed && err == nil {
		return fmt.Errorf("nothing to print for stage %q", e.Stage)
	}
	return err
}

// emit prints the requested stage when the pipeline got that far.
func emit(w io.Writer, res *compiler.Result, stage string) bool {
	switch stage {
	case "tokens":
		if res.Tokens == nil {
			return false
		}
		for _, tok := range res.Tokens {
			fmt.Fprintf(w, "%d:%d\t%s\n", tok.Line(), tok.Column(), tok)
		}
	case "ast":
		if res.Program == nil {
			return false
		}
		fmt.Fprintln(w, ast.Dump(res.Program))
	case "symbols":
		if res.Symbols == nil {
			return false
		}
		fmt.Fprint(w, res.Symbols.String())
	case "ir":
		if res.IR == nil {
			return false
		}
		for _, line := range res.IR.Strings() {
			fmt.Fprintln(w, line)
		}
	case "asm":
		if res.Asm == nil {
			return false
		}
		fmt.Fprint(w, codegen.Listing(res.Asm))
	default:
		return false
	}
	return true
}

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gluax-lang/dpp/compiler"
	"github.com/gluax-lang/dpp/frontend"
	diag "github.com/gluax-lang/dpp/frontend/common"
)

var errCheckFailed = errors.New("check failed")

type CheckCmd struct {
	Path string `help:"Path to the project directory." short:"p" default:"."`
}

func (c *CheckCmd) Run() error {
	absPath, err := filepath.Abs(c.Path)
	if err != nil {
		return err
	}
	return check(os.Stdout, absPath)
}

func check(w io.Writer, dir string) error {
	dt, err := frontend.LoadDppToml(dir)
	if err != nil {
		return err
	}
	code, err := os.ReadFile(dt.EntryPath(dir))
	if err != nil {
		return err
	}

	res, err := compiler.Compile(dt.Entry, string(code), compiler.ProjectOptions(dt))
	if err == nil {
		fmt.Fprintf(w, "%s: ok\n", dt.Entry)
		return nil
	}

	cerr, ok := diag.AsError(err)
	if !ok {
		return err
	}
	report(w, cerr)
	// the checker keeps going, list the rest too
	if res.Analysis != nil {
		for _, e := range res.Analysis.Errors[1:] {
			report(w, e)
		}
	}
	return errCheckFailed
}

func report(w io.Writer, e *diag.Error) {
	d := e.Diagnostic()
	fmt.Fprintf(w, "%s:%d:%d: %s\n", e.Span.Source, d.Range.Start.Line+1, d.Range.Start.Character+1, e.Msg)
}

// Package compiler runs the whole pipeline: preprocess, tokenize, parse,
// check, optimize, lower and generate.
package compiler

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/tliron/commonlog"

	codegen "github.com/gluax-lang/dpp/backend"
	"github.com/gluax-lang/dpp/backend/ir"
	"github.com/gluax-lang/dpp/frontend/ast"
	"github.com/gluax-lang/dpp/frontend/lexer"
	"github.com/gluax-lang/dpp/frontend/optimize"
	"github.com/gluax-lang/dpp/frontend/parser"
	"github.com/gluax-lang/dpp/frontend/preprocess"
	"github.com/gluax-lang/dpp/frontend/sema"
)

var log = commonlog.GetLogger("dpp.compiler")

type Options struct {
	Keywords      []string // reserved on top of the fixed keyword set
	FoldConstants bool
	Preprocess    bool
	Defines       map[string]string // seed macros, used when Preprocess is set
}

func (o Options) passes() []optimize.Pass {
	if o.FoldConstants {
		return []optimize.Pass{optimize.FoldConstants}
	}
	return nil
}

// Key renders the options in a canonical form, for cache keys.
func (o Options) Key() string {
	var sb strings.Builder
	kws := slices.Clone(o.Keywords)
	slices.Sort(kws)
	sb.WriteString("keywords=" + strings.Join(kws, ","))
	sb.WriteString(";fold=" + strconv.FormatBool(o.FoldConstants))
	sb.WriteString(";preprocess=" + strconv.FormatBool(o.Preprocess))
	if o.Preprocess {
		sb.WriteString(";defines=")
		for i, name := range slices.Sorted(maps.Keys(o.Defines)) {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(name + "=" + strconv.Quote(o.Defines[name]))
		}
	}
	return sb.String()
}

// Result holds the output of every stage. When Compile fails, only the stages
// before the failing one are filled in.
type Result struct {
	Source   string
	Tokens   []lexer.Token
	Program  *ast.Program
	Symbols  *sema.SymbolTable
	Analysis *sema.Analysis
	IR       ir.Program
	Asm      []string
}

// Compile runs the pipeline over code. src names the file in positions. The
// error, if any, is the *common.Error of the first stage that failed, and no
// later stage runs.
func Compile(src, code string, opts Options) (*Result, error) {
	res := &Result{Source: src}

	if opts.Preprocess {
		expanded, err := preprocess.Preprocess(src, code, opts.Defines)
		if err != nil {
			return res, err
		}
		code = expanded
		log.Debugf("%s: preprocessed", src)
	}

	tokens, err := lexer.Lex(src, code, lexer.WithKeywords(opts.Keywords...))
	if err != nil {
		return res, err
	}
	res.Tokens = tokens
	log.Debugf("%s: %d tokens", src, len(tokens))

	prog, err := parser.Parse(tokens)
	if err != nil {
		return res, err
	}
	res.Program = prog
	log.Debugf("%s: parsed %d items", src, len(prog.Items))

	res.Symbols = sema.BuildSymbolTable(prog)
	res.Analysis = sema.Analyze(prog, res.Symbols)
	if len(res.Analysis.Errors) > 0 {
		return res, res.Analysis.Errors[0]
	}
	log.Debugf("%s: %d symbols", src, res.Symbols.Len())

	optimize.Run(prog, opts.passes()...)

	res.IR = ir.Lower(prog)
	log.Debugf("%s: %d instructions", src, len(res.IR))

	res.Asm = codegen.Generate(res.IR)
	log.Debugf("%s: %d assembly lines", src, len(res.Asm))

	return res, nil
}

// Package common provides the compile error taxonomy and diagnostic objects.
package common

import (
	"errors"
	"fmt"

	"github.com/gluax-lang/dpp/common"
	protocol "github.com/gluax-lang/lsp"
)

type (
	Span       = common.Span
	dSeverity  = protocol.DiagnosticSeverity
	diagnostic = protocol.Diagnostic
)

// Stage names the pipeline stage that produced an error.
type Stage uint8

const (
	_ Stage = iota
	StagePreprocess
	StageLex
	StageParse
	StageSemantic
)

func (s Stage) String() string {
	switch s {
	case StagePreprocess:
		return "preprocess"
	case StageLex:
		return "lex"
	case StageParse:
		return "parse"
	case StageSemantic:
		return "semantic"
	default:
		return "unknown"
	}
}

// Error kinds. Match them with errors.Is.
var (
	ErrUnterminatedString      = errors.New("unterminated string")
	ErrUnexpectedCharacter     = errors.New("unexpected character")
	ErrExpectedToken           = errors.New("unexpected token")
	ErrExpectedExpression      = errors.New("expected expression")
	ErrInvalidAssignmentTarget = errors.New("invalid assignment target")
	ErrUnsupported             = errors.New("unsupported construct")
	ErrUndefinedVariable       = errors.New("undefined variable")
	ErrBadDirective            = errors.New("bad preprocessor directive")
)

// Error is a positioned, stage-tagged compile error. Every stage fails with one.
type Error struct {
	Stage   Stage
	Kind    error
	Msg     string
	Subject string // offending character, token text or name
	Span    Span
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error at %d:%d: %s", e.Stage, e.Span.LineStart, e.Span.ColumnStart, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Diagnostic converts the error for LSP publishing and `dpp check` output.
func (e *Error) Diagnostic() *diagnostic {
	return ErrorDiag(e.Error(), e.Span)
}

func newError(stage Stage, kind error, subject string, span Span, msg string) *Error {
	return &Error{Stage: stage, Kind: kind, Msg: msg, Subject: subject, Span: span}
}

func PreprocessError(kind error, subject string, span Span, format string, args ...any) *Error {
	return newError(StagePreprocess, kind, subject, span, fmt.Sprintf(format, args...))
}

func LexError(kind error, subject string, span Span, format string, args ...any) *Error {
	return newError(StageLex, kind, subject, span, fmt.Sprintf(format, args...))
}

func ParseError(kind error, subject string, span Span, format string, args ...any) *Error {
	return newError(StageParse, kind, subject, span, fmt.Sprintf(format, args...))
}

func SemanticError(kind error, subject string, span Span, format string, args ...any) *Error {
	return newError(StageSemantic, kind, subject, span, fmt.Sprintf(format, args...))
}

// PanicParse aborts the parse in progress; parser.Parse recovers it.
func PanicParse(kind error, subject string, span Span, format string, args ...any) {
	panic(ParseError(kind, subject, span, format, args...))
}

func NewDiagnostic(severity dSeverity, message string, span Span) *diagnostic {
	return &protocol.Diagnostic{
		Severity: &severity,
		Message:  message,
		Range:    span.ToRange(),
	}
}

func ErrorDiag(msg string, span Span) *diagnostic {
	return NewDiagnostic(protocol.DiagnosticSeverityError, msg, span)
}

// AsError extracts the compile error from err, if there is one.
func AsError(err error) (*Error, bool) {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr, true
	}
	return nil, false
}

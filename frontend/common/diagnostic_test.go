package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gluax-lang/dpp/common"
	protocol "github.com/gluax-lang/lsp"
)

func TestErrorString(t *testing.T) {
	span := common.SpanNew(3, 3, 7, 9)
	tests := []struct {
		err  *Error
		want string
	}{
		{LexError(ErrUnexpectedCharacter, "@", span, "unexpected character '%s'", "@"), "lex error at 3:7: unexpected character '@'"},
		{ParseError(ErrExpectedExpression, ";", span, "expected expression"), "parse error at 3:7: expected expression"},
		{SemanticError(ErrUndefinedVariable, "y", span, "undefined variable '%s'", "y"), "semantic error at 3:7: undefined variable 'y'"},
		{PreprocessError(ErrBadDirective, "#endif", span, "#endif without matching #ifdef"), "preprocess error at 3:7: #endif without matching #ifdef"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestErrorKind(t *testing.T) {
	err := fmt.Errorf("compiling: %w", SemanticError(ErrUndefinedVariable, "y", common.SpanDefault(), "undefined variable 'y'"))
	if !errors.Is(err, ErrUndefinedVariable) {
		t.Fatal("errors.Is should see the kind through wrapping")
	}
	if errors.Is(err, ErrUnsupported) {
		t.Fatal("errors.Is matched the wrong kind")
	}
	cerr, ok := AsError(err)
	if !ok {
		t.Fatal("AsError failed on a wrapped compile error")
	}
	if cerr.Stage != StageSemantic || cerr.Subject != "y" {
		t.Errorf("got stage %v subject %q", cerr.Stage, cerr.Subject)
	}
	if _, ok := AsError(errors.New("plain")); ok {
		t.Error("AsError accepted a plain error")
	}
}

func TestStageString(t *testing.T) {
	tests := map[Stage]string{
		StagePreprocess: "preprocess",
		StageLex:        "lex",
		StageParse:      "parse",
		StageSemantic:   "semantic",
		Stage(0):        "unknown",
	}
	for stage, want := range tests {
		if got := stage.String(); got != want {
			t.Errorf("Stage(%d).String() = %q, want %q", stage, got, want)
		}
	}
}

func TestPanicParse(t *testing.T) {
	defer func() {
		r := recover()
		cerr, ok := r.(*Error)
		if !ok {
			t.Fatalf("recovered %T, want *Error", r)
		}
		if cerr.Stage != StageParse || !errors.Is(cerr, ErrExpectedToken) {
			t.Errorf("unexpected error %v", cerr)
		}
	}()
	PanicParse(ErrExpectedToken, ")", common.SpanDefault(), "expected ')'")
}

func TestDiagnostic(t *testing.T) {
	err := LexError(ErrUnterminatedString, "\"", common.SpanNew(2, 2, 5, 5), "unterminated string")
	d := err.Diagnostic()
	if d.Message != err.Error() {
		t.Errorf("message = %q", d.Message)
	}
	if d.Severity == nil || *d.Severity != protocol.DiagnosticSeverityError {
		t.Error("expected error severity")
	}
	if d.Range.Start.Line != 1 || d.Range.Start.Character != 4 {
		t.Errorf("range start = %+v, want 1:4", d.Range.Start)
	}
}

func TestSHA256Hex(t *testing.T) {
	if SHA256Hex("ab", "c") == SHA256Hex("a", "bc") {
		t.Error("parts must be separated")
	}
	if SHA256Hex("x") != SHA256Hex("x") {
		t.Error("hash is not deterministic")
	}
	if got := len(SHA256Hex()); got != 64 {
		t.Errorf("hex length = %d, want 64", got)
	}
}

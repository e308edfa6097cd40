package compiler

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/gluax-lang/dpp/artifact"
	"github.com/gluax-lang/dpp/cache"
	"github.com/gluax-lang/dpp/frontend"
	diag "github.com/gluax-lang/dpp/frontend/common"
)

func TestCompile(t *testing.T) {
	res, err := Compile("main.dpp", "1 + 2;", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := res.IR.Strings(), []string{"push 1", "push 2", "+"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("IR = %q, want %q", got, want)
	}
	want := []string{
		"    push 1",
		"    push 2",
		"    pop rbx",
		"    pop rax",
		"    add rax, rbx",
		"    push rax",
	}
	if !reflect.DeepEqual(res.Asm, want) {
		t.Fatalf("Asm = %q, want %q", res.Asm, want)
	}
	if len(res.Tokens) != 5 || res.Program == nil || res.Symbols.Len() != 0 {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestCompileProgram(t *testing.T) {
	code := `
let total: int = 0;
fn add(a: int, b: int) -> int {
	return a + b;
}
total = add(total, 2 * 3);
`
	res, err := Compile("main.dpp", code, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := res.Symbols.Map(), map[string]string{"total": "int", "add": "fn(int, int) -> int"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("symbols = %v", got)
	}
	wantIR := []string{
		"push 0", "store total",
		"function add:", "param a", "param b", "load a", "load b", "+", "ret", "end_function",
		"load total", "push 2", "push 3", "*", "call add 2", "store total", "load total",
	}
	if got := res.IR.Strings(); !reflect.DeepEqual(got, wantIR) {
		t.Fatalf("IR = %q\nwant %q", got, wantIR)
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		code  string
		opts  Options
		stage diag.Stage
		kind  error
	}{
		{`"abc`, Options{}, diag.StageLex, diag.ErrUnterminatedString},
		{"x = @;", Options{}, diag.StageLex, diag.ErrUnexpectedCharacter},
		{"#define N 1", Options{}, diag.StageLex, diag.ErrUnexpectedCharacter},
		{"fn f() int {}", Options{}, diag.StageParse, diag.ErrExpectedToken},
		{"1 = 2;", Options{}, diag.StageParse, diag.ErrInvalidAssignmentTarget},
		{"loop;", Options{Keywords: []string{"loop"}}, diag.StageParse, diag.ErrExpectedExpression},
		{"print(z);", Options{}, diag.StageSemantic, diag.ErrUndefinedVariable},
		{"#endif", Options{Preprocess: true}, diag.StagePreprocess, diag.ErrBadDirective},
	}
	for _, tc := range tests {
		_, err := Compile("main.dpp", tc.code, tc.opts)
		if !errors.Is(err, tc.kind) {
			t.Errorf("%q: err = %v, want %v", tc.code, err, tc.kind)
			continue
		}
		cerr, ok := diag.AsError(err)
		if !ok || cerr.Stage != tc.stage {
			t.Errorf("%q: err = %v, want stage %s", tc.code, err, tc.stage)
		}
		if cerr.Span.Source != "main.dpp" {
			t.Errorf("%q: error source = %q", tc.code, cerr.Span.Source)
		}
	}
}

func TestCompileStopsAtFirstFailure(t *testing.T) {
	res, err := Compile("main.dpp", "print(z);", Options{})
	if err == nil {
		t.Fatal("expected an error")
	}
	if res.Program == nil || res.Analysis == nil {
		t.Fatal("stages before the failure must be kept")
	}
	if res.IR != nil || res.Asm != nil {
		t.Fatal("stages after the failure must not run")
	}
}

func TestCompileOptions(t *testing.T) {
	res, err := Compile("main.dpp", "1 + 2 * 3;", Options{FoldConstants: true})
	if err != nil {
		t.Fatal(err)
	}
	if got := res.IR.Strings(); !reflect.DeepEqual(got, []string{"push 7"}) {
		t.Fatalf("folded IR = %q", got)
	}

	opts := Options{Preprocess: true, Defines: map[string]string{"N": "2"}}
	res, err = Compile("main.dpp", "#define M 3\nN * M;", opts)
	if err != nil {
		t.Fatal(err)
	}
	if got := res.IR.Strings(); !reflect.DeepEqual(got, []string{"push 2", "push 3", "*"}) {
		t.Fatalf("preprocessed IR = %q", got)
	}
	if res.Tokens[0].Line() != 2 {
		t.Fatalf("first token on line %d, want 2", res.Tokens[0].Line())
	}
}

func TestCompileIsDeterministic(t *testing.T) {
	code := "let x: int = 4; fn f(a: int) -> int { return a / 2; } x = f(x) - 1;"
	a, err := Compile("", code, Options{})
	if err != nil {
		t.Fatal(err)
	}
	b, _ := Compile("", code, Options{})
	if !reflect.DeepEqual(a.Asm, b.Asm) || !reflect.DeepEqual(a.IR, b.IR) {
		t.Fatal("two compilations differ")
	}
}

func TestOptionsKey(t *testing.T) {
	base := Options{Keywords: []string{"b", "a"}}
	same := Options{Keywords: []string{"a", "b"}}
	if base.Key() != same.Key() {
		t.Fatal("keyword order changed the key")
	}
	if base.Key() == (Options{Keywords: []string{"a", "b"}, FoldConstants: true}).Key() {
		t.Fatal("fold flag not part of the key")
	}
	withDefines := Options{Preprocess: true, Defines: map[string]string{"A": "1"}}
	if withDefines.Key() == (Options{Preprocess: true, Defines: map[string]string{"A": "2"}}).Key() {
		t.Fatal("define values not part of the key")
	}
}

func writeProject(t *testing.T, dir, config, code string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(dir, "src"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, frontend.ConfigFile), []byte(config), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "src", "main.dpp"), []byte(code), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestCompileProject(t *testing.T) {
	dir := t.TempDir()
	writeProject(t, dir, frontend.Template("demo"), "let x: int = 1; x = x + 1;")

	first, err := CompileProject(dir)
	if err != nil {
		t.Fatal(err)
	}
	if first.Cached || first.Result == nil {
		t.Fatal("first build must compile")
	}
	if first.Artifact.Name != "demo" || first.Artifact.Symbols["x"] != "int" {
		t.Fatalf("artifact = %+v", first.Artifact)
	}

	second, err := CompileProject(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !second.Cached || second.Result != nil {
		t.Fatal("second build must come from the cache")
	}
	if second.Artifact.BuildID != first.Artifact.BuildID || !reflect.DeepEqual(second.Artifact.Asm, first.Artifact.Asm) {
		t.Fatal("cached artifact differs from the built one")
	}

	writeProject(t, dir, frontend.Template("demo"), "let x: int = 2;")
	third, err := CompileProject(dir)
	if err != nil {
		t.Fatal(err)
	}
	if third.Cached {
		t.Fatal("changed source served from the cache")
	}
}

func TestCompileProjectWithoutCache(t *testing.T) {
	dir := t.TempDir()
	writeProject(t, dir, "name = \"demo\"\nversion = \"1\"\n[optimize]\nfold_constants = true\n", "2 * 21;")

	build, err := CompileProject(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got := build.Artifact.Program().Strings(); !reflect.DeepEqual(got, []string{"push 42"}) {
		t.Fatalf("IR = %q", got)
	}
	if _, err := os.Stat(filepath.Join(dir, ".dpp")); !os.IsNotExist(err) {
		t.Fatal("cache directory created with caching disabled")
	}
}

func TestCompileProjectErrors(t *testing.T) {
	if _, err := CompileProject(t.TempDir()); err == nil {
		t.Fatal("missing dpp.toml accepted")
	}

	dir := t.TempDir()
	writeProject(t, dir, frontend.Template("demo"), "print(z);")
	if _, err := CompileProject(dir); !errors.Is(err, diag.ErrUndefinedVariable) {
		t.Fatalf("err = %v", err)
	}

	dir = t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, frontend.ConfigFile), []byte(frontend.Template("demo")), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := CompileProject(dir); err == nil {
		t.Fatal("missing entry file accepted")
	}
}

func TestCompileProjectCorruptCacheEntry(t *testing.T) {
	dir := t.TempDir()
	code := "let x: int = 1;"
	writeProject(t, dir, frontend.Template("demo"), code)
	if _, err := CompileProject(dir); err != nil {
		t.Fatal(err)
	}

	dt, err := frontend.LoadDppToml(dir)
	if err != nil {
		t.Fatal(err)
	}
	key := diag.SHA256Hex(dt.Name, dt.Version, dt.Entry, ProjectOptions(dt).Key(), code)
	c, err := cache.Open(dt.CachePath(dir))
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Put(key, []byte("not cbor")); err != nil {
		t.Fatal(err)
	}
	c.Close()

	build, err := CompileProject(dir)
	if err != nil {
		t.Fatal(err)
	}
	if build.Cached {
		t.Fatal("corrupt entry served from the cache")
	}
	again, err := CompileProject(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !again.Cached {
		t.Fatal("rebuilt entry was not stored")
	}
}

func TestStoreFailureIsNotFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	c, err := cache.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	c.Close()

	// the closed database refuses the write; store only logs it
	store(c, "k", artifact.New("demo", "1", "src/main.dpp", "k"))

	c, err = cache.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	if _, ok := lookup(c, "k"); ok {
		t.Fatal("failed write left an entry behind")
	}
}

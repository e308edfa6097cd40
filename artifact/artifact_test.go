package artifact

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"

	"github.com/gluax-lang/dpp/backend/ir"
)

func sample() *Artifact {
	a := New("demo", "0.1", "src/main.dpp", "abc123")
	a.Symbols = map[string]string{"x": "int", "f": "fn(bool) -> int"}
	a.SetIR(ir.Program{ir.Function("f", 1), ir.Param("y", 0), ir.Push("1"), ir.Ret(), ir.EndFunction()})
	a.Asm = []string{"f:", "    push rbp"}
	return a
}

func TestNewAssignsBuildID(t *testing.T) {
	a, b := New("a", "1", "", ""), New("a", "1", "", "")
	if _, err := uuid.Parse(a.BuildID); err != nil {
		t.Fatalf("BuildID %q: %v", a.BuildID, err)
	}
	if a.BuildID == b.BuildID {
		t.Fatal("two artifacts share a build id")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	a := sample()
	data, err := Marshal(a)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, a) {
		t.Fatalf("got %+v\nwant %+v", got, a)
	}
	if !reflect.DeepEqual(got.Program(), ir.Program{ir.Function("f", 1), ir.Param("y", 0), ir.Push("1"), ir.Ret(), ir.EndFunction()}) {
		t.Fatalf("Program() = %v", got.Program())
	}
}

func TestMarshalIsCanonical(t *testing.T) {
	a := sample()
	first, err := Marshal(a)
	if err != nil {
		t.Fatal(err)
	}
	for range 5 {
		again, _ := Marshal(a)
		if !bytes.Equal(first, again) {
			t.Fatal("encoding is not deterministic")
		}
	}
}

func TestUnmarshalErrors(t *testing.T) {
	if _, err := Unmarshal([]byte{0xff, 0x00}); err == nil {
		t.Fatal("garbage decoded without error")
	}

	data, err := cbor.Marshal(&Artifact{BuildID: "nope"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Unmarshal(data); err == nil || !strings.Contains(err.Error(), "bad build id") {
		t.Fatalf("err = %v", err)
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "demo"+Extension)
	a := sample()
	if err := WriteFile(path, a); err != nil {
		t.Fatal(err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.BuildID != a.BuildID || !reflect.DeepEqual(got.Asm, a.Asm) {
		t.Fatalf("got %+v", got)
	}
}

// Package artifact is the on-disk form of a finished build: the generated
// assembly together with the IR and symbol table it came from.
package artifact

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"

	"github.com/gluax-lang/dpp/backend/ir"
)

// Extension of artifact files written by `dpp build`.
const Extension = ".dppa"

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("artifact: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

type Artifact struct {
	BuildID    string            `cbor:"1,keyasint"`
	Name       string            `cbor:"2,keyasint"`
	Version    string            `cbor:"3,keyasint"`
	Source     string            `cbor:"4,keyasint"` // entry file, relative to the project
	SourceHash string            `cbor:"5,keyasint"` // hex SHA-256 of source and options
	Symbols    map[string]string `cbor:"6,keyasint,omitempty"`
	IR         []Instr           `cbor:"7,keyasint,omitempty"`
	Asm        []string          `cbor:"8,keyasint,omitempty"`
}

type Instr struct {
	Op  uint8  `cbor:"1,keyasint"`
	Arg string `cbor:"2,keyasint,omitempty"`
	N   int    `cbor:"3,keyasint,omitempty"`
}

// New returns an artifact with a fresh build ID.
func New(name, version, source, sourceHash string) *Artifact {
	return &Artifact{
		BuildID:    uuid.New().String(),
		Name:       name,
		Version:    version,
		Source:     source,
		SourceHash: sourceHash,
	}
}

func (a *Artifact) SetIR(prog ir.Program) {
	a.IR = make([]Instr, len(prog))
	for i, in := range prog {
		a.IR[i] = Instr{Op: uint8(in.Op), Arg: in.Arg, N: in.N}
	}
}

func (a *Artifact) Program() ir.Program {
	prog := make(ir.Program, len(a.IR))
	for i, in := range a.IR {
		prog[i] = ir.Instr{Op: ir.Op(in.Op), Arg: in.Arg, N: in.N}
	}
	return prog
}

// Marshal serializes a to canonical CBOR; equal artifacts encode to equal
// bytes.
func Marshal(a *Artifact) ([]byte, error) {
	return cborEncMode.Marshal(a)
}

func Unmarshal(data []byte) (*Artifact, error) {
	var a Artifact
	if err := cbor.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("artifact: unmarshal: %w", err)
	}
	if _, err := uuid.Parse(a.BuildID); err != nil {
		return nil, fmt.Errorf("artifact: bad build id %q: %w", a.BuildID, err)
	}
	return &a, nil
}

func WriteFile(path string, a *Artifact) error {
	data, err := Marshal(a)
	if err != nil {
		return fmt.Errorf("artifact: marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func ReadFile(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Unmarshal(data)
}

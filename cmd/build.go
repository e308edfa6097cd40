package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gluax-lang/dpp/artifact"
	codegen "github.com/gluax-lang/dpp/backend"
	"github.com/gluax-lang/dpp/compiler"
)

type BuildCmd struct {
	Path string `help:"Path to the project directory." short:"p" default:"."`
}

func (b *BuildCmd) Run() error {
	absPath, err := filepath.Abs(b.Path)
	if err != nil {
		return err
	}

	build, err := compiler.CompileProject(absPath)
	if err != nil {
		return err
	}

	name := strings.ToLower(build.Config.Name)

	outDir := filepath.Join(absPath, "out")
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	asmPath := filepath.Join(outDir, name+".asm")
	if err := os.WriteFile(asmPath, []byte(codegen.Listing(build.Artifact.Asm)), 0644); err != nil {
		return err
	}
	if err := artifact.WriteFile(filepath.Join(outDir, name+artifact.Extension), build.Artifact); err != nil {
		return err
	}

	status := "built"
	if build.Cached {
		status = "up to date"
	}
	fmt.Printf("%s %s -> %s\n", name, status, asmPath)
	return nil
}

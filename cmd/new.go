package main

import (
	"os"
	"path/filepath"

	"github.com/gluax-lang/dpp/frontend"
)

type NewCmd struct {
	Name string `arg:"" required:"" help:"Name of the new project."`
}

const mainTemplate = `fn main() -> int {
	let answer: int = 6 * 7;
	return answer;
}
`

func (n *NewCmd) Run() error {
	projectDir := n.Name
	if err := os.MkdirAll(filepath.Join(projectDir, "src"), 0755); err != nil {
		return err
	}

	// .gitignore
	gitignoreContent := "out/\n.dpp/\n"
	if err := os.WriteFile(filepath.Join(projectDir, ".gitignore"), []byte(gitignoreContent), 0644); err != nil {
		return err
	}

	// dpp.toml
	tomlContent := frontend.Template(filepath.Base(projectDir))
	if err := os.WriteFile(filepath.Join(projectDir, frontend.ConfigFile), []byte(tomlContent), 0644); err != nil {
		return err
	}

	// src/main.dpp
	if err := os.WriteFile(filepath.Join(projectDir, filepath.FromSlash(frontend.DefaultEntry)), []byte(mainTemplate), 0644); err != nil {
		return err
	}

	return nil
}

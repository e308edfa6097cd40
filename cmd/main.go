package main

import (
	"github.com/alecthomas/kong"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("dpp"),
		kong.Description("D++ compiler"),
		kong.UsageOnError(),
	)
	commonlog.Configure(cli.Verbose, nil)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

type CLI struct {
	Verbose int `help:"Increase log verbosity (-v info, -vv debug)." short:"v" type:"counter"`

	Build   BuildCmd   `cmd:"" help:"Build the project." aliases:"compile"`
	Check   CheckCmd   `cmd:"" help:"Check the project for errors."`
	Emit    EmitCmd    `cmd:"" help:"Print one pipeline stage of a source file."`
	New     NewCmd     `cmd:"" help:"Create a new project."`
	Lsp     LspCmd     `cmd:"" help:"Run the LSP server."`
	Version VersionCmd `cmd:"" help:"Show version."`
}

package main

import (
	"github.com/alecthomas/kong"

	"github.com/mvhagen/patternbook/cmd/patternbook/commands"
	"github.com/mvhagen/patternbook/internal/version"
)

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("patternbook"),
		kong.Description("Build, lint and preview the design patterns lecture book."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)
	err := ctx.Run(&commands.Global{})
	ctx.FatalIfErrorf(err)
}

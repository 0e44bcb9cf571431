package main

import (
	"fmt"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Version  VersionCmd  `cmd:"" help:"Print version information."`
	Generate GenerateCmd `cmd:"" default:"withargs" help:"Generate models.ts for every configured project."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("typegen"),
		kong.Description("Generate TypeScript interfaces and yup validators from OpenAPI schemas."),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

package main

import (
	"context"
	"log"
	"os"

	"github.com/alazlabs/alaz/cmd"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.NewApp()
	app.Name = os.Args[0]
	app.Usage = "AArch64 Assembly Listing Analyzer"
	app.Description = "Parses objdump listings and explains each instruction's effect"
	app.Commands = []*cli.Command{
		cmd.AnalyzeCommand,
		cmd.FunctionsCommand,
		cmd.LookupCommand,
	}
	err := app.RunContext(context.Background(), os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

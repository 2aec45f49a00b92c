package cmd

import (
	"errors"
	"fmt"

	"github.com/alazlabs/alaz/instructiondb"
	"github.com/alazlabs/alaz/objdump"
	"github.com/urfave/cli/v2"
)

func CreateFunctionsCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "functions",
		Usage:       "Lists the functions found in a dump file",
		Description: "Lists the functions found in a dump file",
		ArgsUsage:   "FILE",
		Action:      action,
	}
}

var FunctionsCommand = CreateFunctionsCommand(ListFunctions)

func ListFunctions(ctx *cli.Context) error {
	path := ctx.Args().First()
	if path == "" {
		return errors.New("expected argument: FILE")
	}

	parser, err := objdump.LoadDumpFile(path)
	if err != nil {
		return err
	}

	// The listing may define a symbol more than once; show each name once,
	// keeping file order.
	seen := make(map[string]bool)
	for _, name := range parser.ListFunctions() {
		if seen[name] {
			continue
		}
		seen[name] = true
		fmt.Println(name)
	}
	return nil
}

func CreateLookupCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "lookup",
		Usage:       "Shows the reference entry for a mnemonic",
		Description: "Shows the reference entry for a mnemonic",
		ArgsUsage:   "MNEMONIC",
		Action:      action,
	}
}

var LookupCommand = CreateLookupCommand(LookupMnemonic)

func LookupMnemonic(ctx *cli.Context) error {
	mnemonic := ctx.Args().First()
	if mnemonic == "" {
		return errors.New("expected argument: MNEMONIC")
	}

	db, err := instructiondb.LoadEmbedded()
	if err != nil {
		return fmt.Errorf("error loading instruction database: %w", err)
	}

	def, ok := db.Find(mnemonic)
	if !ok {
		return fmt.Errorf("no reference entry for %q", mnemonic)
	}

	fmt.Printf("%s - %s\n", def.Mnemonic, def.Name)
	fmt.Printf("Format:      %s\n", def.Format)
	fmt.Printf("Description: %s\n", def.Description)
	if len(def.FlagsAffected) > 0 {
		fmt.Printf("Flags:       %v\n", def.FlagsAffected)
	}
	fmt.Printf("Example:     %s\n", def.Example)
	return nil
}
